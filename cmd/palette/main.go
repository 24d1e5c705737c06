// Package main provides an interactive shell over the command core: each
// input line is parsed as a command definition and resolved to an id, and
// lines starting with ">" filter the command palette.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/pagemark/internal/command"
	"github.com/louisbranch/pagemark/internal/palette"
	"github.com/louisbranch/pagemark/internal/platform/config"
	"github.com/louisbranch/pagemark/internal/platform/logging"
)

type appConfig struct {
	Logging logging.Config
}

func main() {
	var quiet bool
	flag.BoolVar(&quiet, "q", false, "suppress the prompt, print results only")
	flag.Parse()

	config.LoadDotEnv()

	var cfg appConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		config.Exitf("set up logging: %v", err)
	}
	defer closeLog()

	catalog, err := command.LoadCatalog()
	if err != nil {
		config.Exitf("load command catalog: %v", err)
	}
	registry := command.NewRegistry(catalog, logger)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if !quiet {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return
		case strings.HasPrefix(line, ">"):
			query := strings.TrimPrefix(line, ">")
			entries := palette.Filter(palette.Entries(catalog, registry), query)
			for _, e := range entries {
				fmt.Printf("%6d  %s\n", int(e.ID), e.Label)
			}
		default:
			id, err := registry.ParseDefinition(line)
			if err != nil {
				logger.Warn("definition rejected", "definition", line, "error", err)
				fmt.Println("-1")
				continue
			}
			fmt.Println(int(id))
			if inst, ok := registry.FindByID(id); ok {
				for _, v := range inst.Args() {
					fmt.Printf("  %s (%s) = %s\n", v.Name(), v.Kind(), formatValue(v))
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		config.Exitf("read stdin: %v", err)
	}
}

func formatValue(v command.Value) string {
	switch v.Kind() {
	case command.KindString:
		s, _ := v.Str()
		return s
	case command.KindInt:
		n, _ := v.Int()
		return fmt.Sprintf("%d", n)
	case command.KindBool:
		b, _ := v.Bool()
		return fmt.Sprintf("%t", b)
	case command.KindColor:
		c, _ := v.Color()
		return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
	}
	return ""
}
