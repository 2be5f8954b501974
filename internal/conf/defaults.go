// conf/defaults.go default values for settings
package conf

import "github.com/spf13/viper"

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("input.columns.id", "record_id")
	viper.SetDefault("input.columns.clinicalt", "clin_t")
	viper.SetDefault("input.columns.clinicaln", "clin_n")
	viper.SetDefault("input.columns.patht", "path_t")
	viper.SetDefault("input.columns.pathn", "path_n")
	viper.SetDefault("input.columns.metastasis", "m")
	viper.SetDefault("input.columns.positivenodes", "nodes_positive")

	viper.SetDefault("output.format", "csv")
	viper.SetDefault("output.path", "")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.metrics", true)
}
