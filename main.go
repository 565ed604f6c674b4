package main

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// The class that is used when no files are given
const exampleSource = `
public class estudiante{
    int cr , t,e,q;
    ArrayList<Persona> listaPersonas;
    string nombre;
    int edad;
    float var34h5;
}
`

const exampleName = "estudiante.java"

func main() {
	if err := newRootCmd(log.StandardLogger()).Execute(); err != nil {
		log.Fatal(err)
	}
}

// app is the state shared between all the commands of one invocation
type app struct {
	logger     *log.Logger
	configPath string
	verbose    bool
	config     *Config
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	a := &app{logger: logger}

	rootCmd := &cobra.Command{
		Use:   "javafront",
		Short: "Tokenize and parse Java class declarations",
		Long: `javafront is a small compiler front end for a single Java class
whose body only declares fields. Every command reads the given .java files,
or a built-in example class when no files are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./"+defaultConfigPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Additional debug info")

	rootCmd.AddCommand(a.newTokensCmd(), a.newParseCmd(), a.newCheckCmd())
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	level, _ := log.ParseLevel(cfg.LogLevel)
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger.SetLevel(level)
	return nil
}

// ChangeFileExtension replaces the extension of a path, or adds one if the
// path doesn't have any
func ChangeFileExtension(filePath, to string) string {
	return strings.TrimSuffix(filePath, filepath.Ext(filePath)) + to
}
