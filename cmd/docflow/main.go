package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-leo/docflow"
	"github.com/go-leo/docflow/chain"
	"github.com/go-leo/docflow/event"
	"github.com/go-leo/docflow/report"
	"github.com/go-leo/docflow/strategy"
	"github.com/go-leo/docflow/visitor"
)

const (
	appName = "docflow"
	version = "v0.1.0"
)

var (
	flagType     string
	flagStrategy string
	flagReport   string
	flagWait     bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Run the document workflow demonstration",
		Long:    "docflow runs a fixed demonstration of the chain, strategy and visitor packages. Flags are automation shims; the defaults reproduce the canonical demo sequence.",
		Version: version,
		RunE:    runDemo,
	}
	rootCmd.Flags().StringVar(&flagType, "type", "PDF", "document type fed to the chain (PDF|TXT|DOCX|anything)")
	rootCmd.Flags().StringVar(&flagStrategy, "strategy", "print", "strategy to execute when the chain passes (print|save|none)")
	rootCmd.Flags().StringVar(&flagReport, "report", "none", "run report to print after the demo (none|markdown|html|json)")
	rootCmd.Flags().BoolVar(&flagWait, "wait", false, "wait for Enter before exiting")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	docType := docflow.DocumentType(flagType)

	bus := event.NewBus()
	reporter := report.NewReporter()
	for _, stage := range []event.Stage{event.StageChain, event.StageStrategy, event.StageVisitor} {
		if err := bus.On(stage, reporter); err != nil {
			return err
		}
	}

	log.Info().Str("type", string(docType)).Msg("running document workflow demo")

	// Chain of Responsibility
	head := chain.Link(
		chain.NewFormatChecker(chain.Bus(bus)),
		chain.NewSecurityChecker(chain.Bus(bus)),
	)
	if head.Handle(ctx, docType) {
		// Strategy
		processor := strategy.NewProcessor(strategy.Bus(bus))
		switch flagStrategy {
		case "print":
			processor.SetStrategy(strategy.NewPrintStrategy())
		case "save":
			processor.SetStrategy(strategy.NewSaveStrategy())
		case "none":
		default:
			return fmt.Errorf("unknown strategy %q", flagStrategy)
		}
		processor.Execute(ctx, docType)
	} else {
		log.Warn().Str("type", string(docType)).Msg("chain rejected document type")
	}

	fmt.Println("------------------------")

	// Visitor
	collection := visitor.NewDocumentCollection(visitor.Bus(bus))
	collection.Add(visitor.PDFDocument{})
	collection.Add(visitor.TXTDocument{})
	collection.Process(visitor.NewDisplayVisitor(os.Stdout))

	if err := printReport(reporter.Report()); err != nil {
		return err
	}
	if err := bus.Close(ctx); err != nil {
		return err
	}

	if flagWait {
		fmt.Print("\nPress Enter to exit...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}

func printReport(r *report.Report) error {
	switch flagReport {
	case "none":
		return nil
	case "markdown":
		fmt.Println()
		fmt.Print(r.Markdown())
	case "html":
		html, err := r.HTML()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(html)
	case "json":
		data, err := r.JSON()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown report format %q", flagReport)
	}
	return nil
}
