package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkwhale/inkwhale/internal/agent"
	"github.com/inkwhale/inkwhale/internal/config"
	"github.com/inkwhale/inkwhale/internal/dependency"
	"github.com/inkwhale/inkwhale/internal/log"
	"github.com/inkwhale/inkwhale/internal/shared/cmdutils"
	"github.com/inkwhale/inkwhale/internal/shared/stringutils"
	"github.com/inkwhale/inkwhale/internal/tools"
)

var (
	chatMessage string
	chatLogs    bool
	chatUsage   bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Send a single message and exit")
	chatCmd.Flags().BoolVar(&chatLogs, "logs", false, "Show debug logs")
	chatCmd.Flags().BoolVar(&chatUsage, "usage", false, "Print token usage after each reply")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

const chatHelp = `inkwhale commands:
  /new   start a new conversation
  /help  show this help
  exit   leave the chat`

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.SetLevel(cfg.Log.Level)
	if chatLogs {
		log.SetLevel("debug")
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	orchestrator := container.Orchestrator()
	orchestrator.OnToolCall = func(call tools.ParsedCall, outcome tools.Outcome) {
		cmdutils.PrintToolCall(call.Tool+" "+call.Args.String(), stringutils.Preview(outcome.Text(), 80))
	}

	if chatMessage != "" {
		return runSingleMessage(orchestrator)
	}

	return runInteractive(orchestrator)
}

// runSingleMessage sends one message and prints the final reply.
func runSingleMessage(orchestrator *agent.Orchestrator) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	reply, err := orchestrator.Turn(ctx, chatMessage)
	if err != nil {
		if errors.Is(err, agent.ErrToolLoopExceeded) {
			return fmt.Errorf("the model kept calling tools without answering; try rephrasing")
		}
		return err
	}

	cmdutils.PrintResponse(reply)
	if chatUsage {
		printTurnStats(orchestrator.LastStats())
	}
	return nil
}

// runInteractive starts the REPL: read a line, run a turn, print the reply,
// prompt again.
func runInteractive(orchestrator *agent.Orchestrator) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit, /help for commands)\n\n", logo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenForSignals(cancel)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}

		if handleSlashCommand(orchestrator, line) {
			continue
		}

		reply, err := orchestrator.Turn(ctx, line)
		if err != nil {
			// The failed input was removed from the transcript, so the
			// user can simply try again.
			if errors.Is(err, agent.ErrToolLoopExceeded) {
				fmt.Println("  the model kept calling tools without answering; try rephrasing")
			} else {
				fmt.Printf("  error: %v\n", err)
			}
			continue
		}

		cmdutils.PrintResponse(reply)
		if chatUsage {
			printTurnStats(orchestrator.LastStats())
		}
	}
}

// handleSlashCommand runs REPL-local commands. Returns true if line was one.
func handleSlashCommand(orchestrator *agent.Orchestrator, line string) bool {
	switch strings.ToLower(line) {
	case "/new":
		orchestrator.Reset()
		fmt.Println("New conversation started.")
		return true
	case "/help":
		fmt.Println(chatHelp)
		return true
	}
	return false
}

// listenForSignals exits cleanly on SIGINT or SIGTERM.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()
}

func printTurnStats(stats agent.TurnStats) {
	fmt.Printf("  [%s] tokens: %d prompt, %d completion, %d total; tool calls: %d\n",
		stats.Model,
		stats.Usage.PromptTokens,
		stats.Usage.CompletionTokens,
		stats.Usage.TotalTokens,
		len(stats.ToolCalls),
	)
}
