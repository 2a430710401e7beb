/*
Copyright © 2017 the Proj authors.
This file is part of Proj.

Proj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Proj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Proj.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command projinfo resolves coordinate reference system definitions and
// prints the parameters the parser derived from them.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/proj"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	proj.Logger = logger
}

var defsFile string

var rootCmd = &cobra.Command{
	Use:   "projinfo [flags] definition [definition...]",
	Short: "Resolve CRS definitions and print their parameters",
	Long: `projinfo parses each argument as a coordinate reference system
definition (a PROJ4 "+key=value" string, a WKT tree, or a registered code
such as "EPSG:4326") and prints the resolved ellipsoid, datum, and
projection parameters.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if defsFile != "" {
			if err := loadDefs(defsFile); err != nil {
				return err
			}
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
		for _, def := range args {
			sr, err := proj.Parse(def)
			if err != nil {
				return err
			}
			report(w, def, sr)
		}
		return w.Flush()
	},
}

// loadDefs registers named definitions from a TOML table of
// name = "definition" pairs before any argument is parsed.
func loadDefs(file string) error {
	var custom map[string]string
	if _, err := toml.DecodeFile(file, &custom); err != nil {
		return fmt.Errorf("reading definitions from %s: %v", file, err)
	}
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := proj.AddDef(name, custom[name]); err != nil {
			return err
		}
	}
	return nil
}

func report(w *tabwriter.Writer, def string, sr *proj.SR) {
	fmt.Fprintf(w, "definition\t%s\n", def)
	fmt.Fprintf(w, "  code\t%s\n", sr.SRSCode)
	fmt.Fprintf(w, "  authority\t%s\n", sr.SRSAuth)
	fmt.Fprintf(w, "  title\t%s\n", sr.Title)
	fmt.Fprintf(w, "  projection\t%s\n", sr.Name)
	fmt.Fprintf(w, "  ellipsoid\t%s (a=%g b=%g rf=%g)\n", sr.EllipseName, sr.A, sr.B, sr.Rf)
	fmt.Fprintf(w, "  eccentricity\te=%g es=%g ep2=%g sphere=%v\n", sr.E, sr.Es, sr.Ep2, sr.IsSphere())
	fmt.Fprintf(w, "  datum\t%s (%s) towgs84=%v\n", sr.DatumCode, sr.DatumName, sr.DatumParams)
	fmt.Fprintf(w, "  units\t%s (to_meter=%g)\n", sr.Units, sr.ToMeter)
	fmt.Fprintf(w, "  axis\t%s\n", sr.Axis)
	fmt.Fprintf(w, "  transform bound\t%v\n", sr.Bound())
}

func main() {
	rootCmd.PersistentFlags().StringVar(&defsFile, "defs", "",
		"path to a TOML file of named definitions to register before parsing")
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
