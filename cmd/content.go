package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sellonet/sellonet-web/internal/content"
)

// registryDump is the YAML shape printed by `sellonet content`.
type registryDump struct {
	Sections     []content.Section    `yaml:"sections"`
	Industries   []content.Industry   `yaml:"industries"`
	Technologies []content.Technology `yaml:"technologies"`
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the compiled-in page content as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := content.Default()
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(registryDump{
			Sections:     reg.Sections(),
			Industries:   reg.Industries(),
			Technologies: reg.Technologies(),
		}); err != nil {
			return fmt.Errorf("encoding content: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
