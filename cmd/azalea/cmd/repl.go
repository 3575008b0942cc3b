package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	azalea "github.com/xazalea/language"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	voidStyle   = lipgloss.NewStyle().Faint(true)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg := loadConfig(cfgFile)

	fmt.Println(bannerStyle.Render(fmt.Sprintf(
		"Azalea %s REPL. Ctrl+D or :quit exits.", azalea.Version)))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := azalea.NewRuntime()

	for _, path := range cfg.Preload {
		data, err := os.ReadFile(path)
		if err != nil {
			printError("cannot preload "+path, err)
			continue
		}
		ip.Execute(string(data))
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			printError("read", err)
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" || trimmed == ":q" {
			return nil
		}
		ln.AppendHistory(line)

		result := ip.Execute(line)
		if result.Tag == azalea.VTVoid {
			fmt.Println(voidStyle.Render("void"))
			continue
		}
		fmt.Println(valueStyle.Render(result.String()))
	}
}
