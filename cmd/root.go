package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	layoutcmd "github.com/HMetcalfeW/terracarta/cmd/layout"
	"github.com/HMetcalfeW/terracarta/cmd/version"
)

var cfgFile string

// RootCmd represents the base command.
var RootCmd = &cobra.Command{
	Use:   "terracarta",
	Short: "Terracarta maps Terraform resources onto a positioned diagram",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			log.WithError(err).Fatal()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithField("func", "root.Execute").WithError(err).Fatal()
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flag for config file.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.terracarta.yaml)")

	// Configure logrus to use a text formatter with full timestamps.
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.InfoLevel)

	RootCmd.AddCommand(layoutcmd.LayoutCmd)
	RootCmd.AddCommand(version.VersionCmd)

	log.WithField("func", "root.init").Debug("root initialization complete")
}

func initConfig() {
	logger := log.WithField("func", "initConfig")
	logger.Debug("Initializing root config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".terracarta")
	}
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		logger.Info("Using config file:", viper.ConfigFileUsed())
	}
}
