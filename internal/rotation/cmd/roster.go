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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rotation/pkg/roster"
)

func Roster() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the saved rosters",
		Long: heredoc.Doc(`
			roster manages the named rosters saved on this machine, so
			that a team's player names only need to be typed out once
			and can afterwards be scheduled with generate --roster.
		`),
	}

	cmd.AddCommand(RosterSave())
	cmd.AddCommand(RosterRemove())

	return cmd
}

func RosterSave() *cobra.Command {
	return &cobra.Command{
		Use:   "save name player...",
		Short: "Save a named roster for later scheduling",
		Args:  cobra.MinimumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := roster.Open(roster.RostersFile)
			if err != nil {
				return err
			}

			if err := store.Save(args[0], args[1:]); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mSaved Roster:\x1b[0m %s (%d players)\n", args[0], len(args)-1)
			return nil
		},
	}
}

func RosterRemove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove name",
		Short: "Remove a saved roster",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := roster.Open(roster.RostersFile)
			if err != nil {
				return err
			}

			if err := store.Remove(args[0]); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mRemoved Roster:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
