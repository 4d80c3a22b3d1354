/*
Package config loads optional defaults for mmv flags from a file.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	      +------------+------------+------------+
	      |            |            |            |
	+-----+----+ +-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   | |   TOML   |
	+----------+ +----------+ +----------+ +----------+

🎯 Purpose:
- Lets a directory carry default flags (force, strict, dry_run, exclude)
- Picks the parser from the file extension

🔄 Precedence:
 1. A flag given on the command line
 2. The value from the config file
 3. The built-in default

The default file is .mmv.yaml in the working directory. A missing default
file is not an error; a missing file named with --config is.

🔍 Example:

	# .mmv.yaml
	strict: true
	exclude:
	  - "*.tmp"

	# .mmv.hcl, env exposes the process environment
	force   = true
	exclude = [env.MMV_EXCLUDE]
*/
package config
