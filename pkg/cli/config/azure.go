package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Azure holds the Azure DevOps connection configuration. Required values
// may come from flags, environment variables or a TOML config file; flag
// and environment values win over file values.
type Azure struct {
	Username string `toml:"username"`
	PAT      string `toml:"pat" masq:"secret"`
	Account  string `toml:"account"`
	Project  string `toml:"project"`

	ConfigFile string `toml:"-"`
}

// Flags returns CLI flags for the Azure DevOps connection
func (c *Azure) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "Username (usually email address) of the Azure DevOps account",
			Destination: &c.Username,
			Sources:     cli.EnvVars("VSTSDIFF_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "pat",
			Aliases:     []string{"t"},
			Usage:       "Personal Access Token to connect with",
			Destination: &c.PAT,
			Sources:     cli.EnvVars("VSTSDIFF_PAT"),
		},
		&cli.StringFlag{
			Name:        "account",
			Aliases:     []string{"a"},
			Usage:       "Azure DevOps account name (account.visualstudio.com)",
			Destination: &c.Account,
			Sources:     cli.EnvVars("VSTSDIFF_ACCOUNT"),
		},
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Azure DevOps project name",
			Destination: &c.Project,
			Sources:     cli.EnvVars("VSTSDIFF_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "TOML file supplying defaults for the connection flags",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("VSTSDIFF_CONFIG"),
		},
	}
}

// LoadFile merges defaults from the TOML config file, if one was given.
// Only fields left empty by flags and environment variables are filled.
func (c *Azure) LoadFile() error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
	}

	var file Azure
	if err := toml.Unmarshal(data, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
	}

	if c.Username == "" {
		c.Username = file.Username
	}
	if c.PAT == "" {
		c.PAT = file.PAT
	}
	if c.Account == "" {
		c.Account = file.Account
	}
	if c.Project == "" {
		c.Project = file.Project
	}

	return nil
}

// MissingFlags returns the names of required connection flags that are
// still unset after merging all sources
func (c *Azure) MissingFlags() []string {
	required := []struct {
		name  string
		value string
	}{
		{"username", c.Username},
		{"pat", c.PAT},
		{"account", c.Account},
		{"project", c.Project},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, "--"+r.name)
		}
	}

	return missing
}
