// Copyright © 2025 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"laptudirm.com/x/rotation/internal/util"
	"laptudirm.com/x/rotation/pkg/roster"
)

func Rosters() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "Lists the saved rosters and their players",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := roster.Open(roster.RostersFile)
			if err != nil {
				return err
			}

			if len(store.Rosters) == 0 {
				fmt.Println("\x1b[31mNo Saved Rosters.\x1b[0m")
				return nil
			}

			names := make([]string, 0, len(store.Rosters))
			for name := range store.Rosters {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				return util.AlphanumCompare(names[i], names[j])
			})

			fmt.Print("\x1b[32mSaved Rosters\x1b[0m:\n\n")
			for _, name := range names {
				display := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf("- %-20s %s\n", display, strings.Join(store.Rosters[name], ", "))
			}

			return nil
		},
	}
}
