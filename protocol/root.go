package protocol

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datazip-inc/olake-tableview/constants"
	"github.com/datazip-inc/olake-tableview/controller"
	"github.com/datazip-inc/olake-tableview/source"
	"github.com/datazip-inc/olake-tableview/types"
	"github.com/datazip-inc/olake-tableview/utils/logger"
)

var (
	configPath  string
	recordsPath string
	logLevel    string
	logFile     string
	asJSON      bool

	config   *types.Config
	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tableview",
	Short: "filter, sort and page a table of records",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// logger reads LOG_LEVEL and LOG_FILE
		logger.Init()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		config = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return fmt.Errorf("'%s' is an invalid command. Use 'tableview --help' to display usage guide", args[0])
	},
}

func CreateRootCommand() *cobra.Command {
	RootCmd.AddCommand(commands...)
	return RootCmd
}

// loadConfig merges defaults, the config file, TABLEVIEW_* environment
// variables and flags, in increasing order of precedence.
func loadConfig() (*types.Config, error) {
	setDefaults(viper.GetViper())

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %s", configPath, err)
		}
		logger.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	cfg := &types.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := types.DefaultConfig()
	v.SetDefault(constants.Records, defaults.Records)
	v.SetDefault("page_size", defaults.PageSize)
	v.SetDefault("page_size_options", defaults.PageSizeOptions)
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("timezone", defaults.Timezone)
	v.SetDefault("date_layout", defaults.DateLayout)
	v.SetDefault("total_template", defaults.TotalTemplate)
	v.SetDefault("http_timeout", defaults.HTTPTimeout)
	v.SetDefault("columns", defaults.Columns)
}

// loadController fetches the configured records into a new controller. A
// failed fetch is returned as an error.
func loadController(ctx context.Context) (*controller.Controller, error) {
	ctrl := controller.New(controller.OptionsFromConfig(config))
	result := source.Load(ctx, source.New(config.Records, config.HTTPTimeout))
	ctrl.SetResult(result)
	if result.Err != nil {
		return nil, result.Err
	}
	return ctrl, nil
}

func init() {
	commands = append(commands, columnsCmd, treeCmd, queryCmd, replayCmd, checkCmd, specCmd)

	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "", "", "(Optional) Config file (yaml or json)")
	flags.StringVarP(&recordsPath, "records", "", "", "(Optional) URL or path of the records, overrides the config")
	flags.StringVarP(&logLevel, "log-level", "", "info", "(Optional) Log level: debug, info, warn, error")
	flags.StringVarP(&logFile, "log-file", "", "", "(Optional) Also write logs to this file, rotated")
	flags.BoolVarP(&asJSON, "json", "", false, "(Optional) Print json instead of a table")

	_ = viper.BindPFlag(constants.Records, flags.Lookup("records"))
	_ = viper.BindPFlag(constants.LogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(constants.LogFile, flags.Lookup("log-file"))
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
