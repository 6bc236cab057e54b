package main

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"jan-server/services/chat-insights/internal/domain/pipeline"
	"jan-server/services/chat-insights/internal/domain/textnorm"
)

const defaultInput = "BiztelAI_DS_Dataset_Mar'25.json"

type rootOptions struct {
	verbose   bool
	policy    string
	stopwords string
	workers   int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "chat-pipeline",
		Short: "Batch processing for chat conversation corpora",
		Long: `chat-pipeline loads a JSON corpus of conversations, cleans and normalizes
it, and exports or summarizes the result.

Examples:
  chat-pipeline run --input chats.json --output processed_chat_data.csv
  chat-pipeline summary --input chats.json --conversation t_d004c097
  chat-pipeline schema`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().StringVar(&opts.policy, "policy", string(textnorm.PolicyBasic), "Normalization policy (basic|full)")
	cmd.PersistentFlags().StringVar(&opts.stopwords, "stopwords", "", "YAML stopword file replacing the policy list")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Normalization goroutines (0 = GOMAXPROCS)")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newSummaryCmd(opts))
	cmd.AddCommand(newSchemaCmd())
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	out := cmd.ErrOrStderr()
	if out == os.Stderr {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func (o *rootOptions) runner(cmd *cobra.Command) (*pipeline.Runner, error) {
	policy, err := textnorm.ParsePolicy(o.policy)
	if err != nil {
		return nil, err
	}
	var normOpts []textnorm.Option
	if o.stopwords != "" {
		words, err := textnorm.LoadStopwords(o.stopwords)
		if err != nil {
			return nil, err
		}
		normOpts = append(normOpts, textnorm.WithStopwords(words))
	}
	normalizer, err := textnorm.New(policy, normOpts...)
	if err != nil {
		return nil, err
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return pipeline.NewRunner(normalizer, workers, o.logger(cmd)), nil
}
