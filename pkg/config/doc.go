// Package config loads settings structs from environment variables and from
// named sections of YAML documents.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11:
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		log.Fatal(err)
//	}
//	var s babel.Settings
//	if err := config.Load(&s, "BABEL_"); err != nil {
//		log.Fatal(err)
//	}
//
// YAML sections are decoded with gopkg.in/yaml.v3. A settings struct usually
// serves both sources by carrying `env` and `yaml` tags:
//
//	err := config.LoadSectionFile("app.yaml", "babel_i18n", &s)
//
// All errors can be matched with errors.Is against the package sentinels.
package config
