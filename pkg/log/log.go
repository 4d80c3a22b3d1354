// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/walteh/mmv/pkg/rename"
)

// Arrow separates source and destination in a log line.
const Arrow = "->"

// 🎯 Console writes what the user asked for: the run log, a plan, or one error line
type Console struct {
	out   io.Writer
	arrow *color.Color
	mu    sync.Mutex
}

// 🏭 New creates a new console. Color is only used when out is a terminal.
func New(out io.Writer) *Console {
	arrow := color.New(color.Faint)
	if !isTerminal(out) {
		arrow.DisableColor()
	}
	return &Console{out: out, arrow: arrow}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the console from context
func FromContext(ctx context.Context) *Console {
	console, ok := ctx.Value(contextKey{}).(*Console)
	if !ok {
		panic("console not found in context")
	}
	return console
}

// 🎯 NewContext adds the console to context
func NewContext(ctx context.Context, c *Console) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// 📝 formatPair renders "<source> -> <destination>", with a faint arrow on terminals
func (c *Console) formatPair(p rename.Pair) string {
	return fmt.Sprintf("%s %s %s", p.Source, c.arrow.Sprint(Arrow), p.Destination)
}

// 📝 Pairs prints one line per pair
func (c *Console) Pairs(pairs []rename.Pair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range pairs {
		fmt.Fprintln(c.out, c.formatPair(p))
	}
}

// ❌ Error prints the first line of the error message
func (c *Console) Error(err error) {
	if err == nil {
		return
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, msg)
}

// 📋 Plan renders pairs as a table, marking destinations that already exist
func (c *Console) Plan(pairs []rename.Pair, existing map[string]bool) error {
	data := pterm.TableData{{"SOURCE", "DESTINATION", "EXISTS"}}
	for _, p := range pairs {
		exists := "no"
		if existing[p.Destination] {
			exists = "yes"
		}
		data = append(data, []string{p.Source, p.Destination, exists})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, table)
	return nil
}
