/*
Package operation runs one mmv invocation from patterns to copied files.

	+-------------+
	|  Arguments  |
	+------+------+
	       |
	+------+------+     +-------------+
	|   Select    +-----+  pattern    |
	|   (names)   |     +-------------+
	+------+------+
	       |
	+------+------+
	|     Map     |
	|  (rename)   |
	+------+------+
	       |
	+------+------+
	|  Collision  |
	|   (names)   |
	+------+------+
	       |
	+------+------+
	|    Copy     |
	|   (fsys)    |
	+-------------+

🔄 Flow:
 1. Select the entries of the source directory the source pattern matches
 2. Fail with ErrNoMatches when nothing is selected
 3. Build the source to destination mapping from the captures
 4. Fail with ErrCollisionWithoutForce when a destination exists and force is off
 5. Copy every pair
 6. Return one "<source> -> <destination>" line per pair

Every failure before step 5 leaves the filesystem untouched. Once copying has
started nothing is rolled back. Copy failures are only logged unless
Options.Strict is set.

🔍 Example:

	lines, err := operation.Run(ctx, fsys.NewOS(), operation.Arguments{
		SourcePattern:      "photos/*.jpeg",
		DestinationPattern: "photos/#1.jpg",
	})
*/
package operation
