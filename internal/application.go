package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/terminal"
)

// RunApp - wires the application together and runs one terminal session.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	botDelay, err := time.ParseDuration(conf.Bot.Delay)
	if err != nil {
		return fmt.Errorf("invalid bot delay %q: %w", conf.Bot.Delay, err)
	}

	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService(botDelay)
	gameManager := usecase.NewGameManager(logger, gameRepo, botService)

	session := terminal.New(logger, gameManager, os.Stdin, os.Stdout)

	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case sig := <-sigs:
		log.Info("received signal, shutting down", "signal", sig.String())
		fmt.Println("\nInterrupted. Bye!")

		return nil
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}

		return nil
	}
}
