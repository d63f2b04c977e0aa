// cmd/credman/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"credman/cmd/credman/cmd/types"
	"credman/internal/app/client"
	"credman/internal/app/client/config"
	"credman/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "credman",
	Short: "credman - менеджер учетных данных для пентестера",
	Long: `credman хранит домены и их учетные записи (пароли и NTLM-хеши)
и генерирует готовые к копированию команды для impacket, evil-winrm,
xfreerdp и других инструментов.

Все данные лежат локально открытым текстом - храните базу на
зашифрованном диске рабочей станции.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if debug {
		cfg.Env = config.EnvLocal
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Кладем фасад в контекст команд
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(home + "/.credman")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	// Загружаем конфигурацию через стандартный метод
	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")

	// Команды будут добавлены в init() соответствующих файлов
}
