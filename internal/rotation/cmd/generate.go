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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rotation/pkg/output"
	"laptudirm.com/x/rotation/pkg/roster"
	"laptudirm.com/x/rotation/pkg/rotation"
)

const SPIN = 31

func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate { player-count | player-name... }",
		Short: "Generate a fair rotation schedule for the attending players",
		Long: heredoc.Doc(`
			generate computes a rotation schedule which hands every
			attending player a roughly equal share of court time, and
			renders it as csv and/or markdown.

			The attendance is either a single number, which schedules an
			anonymous roster named P1, P2 and so on, a list of player
			names, or a roster saved with "rotation roster save" and
			picked with the --roster flag.
		`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := resolveRoster(cmd, args)
			if err != nil {
				return err
			}

			config := rotation.DefaultConfig()
			config.GameDuration, _ = cmd.Flags().GetDuration("duration")
			config.Quarters, _ = cmd.Flags().GetInt("quarters")
			config.MinStint, _ = cmd.Flags().GetDuration("stint")
			config.Capacity, _ = cmd.Flags().GetInt("capacity")

			if len(players) > 20 {
				logrus.Warn("more than 20 players usually means very short stints")
			}

			logrus.WithField("players", len(players)).Debug("generating rotation schedule")

			sched, err := rotation.Generate(players, config)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			base, _ := cmd.Flags().GetString("output")
			print, _ := cmd.Flags().GetBool("print")

			wants_csv := format == "csv" || format == "both"
			wants_md := format == "markdown" || format == "both"
			if !wants_csv && !wants_md {
				return fmt.Errorf("generate: invalid format %s", format)
			}

			if base != "" {
				s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
				s.Start() // Start the ~working~ spinner.

				if wants_csv {
					err = writeFile(base+".csv", output.CSV, sched)
				}
				if err == nil && wants_md {
					err = writeFile(base+".md", output.Markdown, sched)
				}

				s.Stop() // Stop the ~working~ spinner.
				if err != nil {
					return err
				}
			}

			if base == "" || print {
				renderer := output.Markdown
				if format == "csv" {
					renderer = output.CSV
				}

				if err := renderer(os.Stdout, sched); err != nil {
					return err
				}
			}

			fmt.Printf(
				"\n\x1b[32mSchedule generated:\x1b[0m %d players, %d slots of %s minutes, %d substitutions\n",
				len(players), sched.SlotCount,
				rotation.Minutes(sched.SlotDuration), sched.Rotations,
			)

			return nil
		},
	}

	cmd.Flags().DurationP("duration", "d", 40*time.Minute, "Total game duration")
	cmd.Flags().Int("quarters", 4, "Number of quarters")
	cmd.Flags().Duration("stint", 150*time.Second, "Minimum stint duration")
	cmd.Flags().Int("capacity", 5, "Players on court at the same time")
	cmd.Flags().StringP("format", "f", "both", "Output format: csv, markdown or both")
	cmd.Flags().StringP("output", "o", "", "Base filename for the rendered schedule")
	cmd.Flags().Bool("print", false, "Print the schedule to the console")
	cmd.Flags().StringP("roster", "r", "", "Use a saved roster for the attendance")

	return cmd
}

// resolveRoster turns the command's arguments into a player list: a saved
// roster name, a bare player count, or the player names themselves.
func resolveRoster(cmd *cobra.Command, args []string) ([]roster.Player, error) {
	name, _ := cmd.Flags().GetString("roster")

	switch {
	case name != "":
		store, err := roster.Open(roster.RostersFile)
		if err != nil {
			return nil, err
		}

		return store.Get(name)

	case len(args) == 1:
		if count, err := strconv.Atoi(args[0]); err == nil {
			return roster.Numbered(count), nil
		}

		fallthrough

	case len(args) > 1:
		return roster.New(args), nil

	default:
		return nil, errors.New("generate: no attending players given")
	}
}

func writeFile(path string, render func(io.Writer, *rotation.Schedule) error, sched *rotation.Schedule) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := render(file, sched); err != nil {
		return err
	}

	fmt.Printf("\x1b[34mSaved:\x1b[0m %s\n", path)
	return nil
}
