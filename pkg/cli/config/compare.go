package config

import "github.com/urfave/cli/v3"

// Compare holds the comparison run configuration
type Compare struct {
	ReleaseDefinition string
	CompareExe        string
	Indent            int
	DeleteTempFiles   bool
}

// Flags returns CLI flags for the comparison run
func (c *Compare) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "release-definition",
			Aliases:     []string{"r"},
			Usage:       "Release definition name",
			Destination: &c.ReleaseDefinition,
			Sources:     cli.EnvVars("VSTSDIFF_RELEASE_DEFINITION"),
		},
		&cli.StringFlag{
			Name:        "compare-exe",
			Aliases:     []string{"c"},
			Usage:       "Path to the comparison program, defaults to Beyond Compare 4 in its default location",
			Destination: &c.CompareExe,
			Sources:     cli.EnvVars("VSTSDIFF_COMPARE_EXE"),
		},
		&cli.IntFlag{
			Name:        "indent",
			Aliases:     []string{"i"},
			Usage:       "Number of spaces to indent the JSON files",
			Value:       2,
			Destination: &c.Indent,
			Sources:     cli.EnvVars("VSTSDIFF_INDENT"),
		},
		&cli.BoolFlag{
			Name:        "delete-temp-files",
			Aliases:     []string{"d"},
			Usage:       "Delete the temp files after the comparison tool exits",
			Value:       false,
			Destination: &c.DeleteTempFiles,
			Sources:     cli.EnvVars("VSTSDIFF_DELETE_TEMP_FILES"),
		},
	}
}

// MissingFlags returns the names of required comparison flags that are unset
func (c *Compare) MissingFlags() []string {
	var missing []string
	if c.ReleaseDefinition == "" {
		missing = append(missing, "--release-definition")
	}
	return missing
}
