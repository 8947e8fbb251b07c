// Package showcase declares the demo command tree the cliform binary
// serves its form over: an RNA-seq pipeline planner exercising every
// control variant (paths, choices, repeated tuples, bounded numbers,
// confirmation inputs, flag groups, counters and date times).
package showcase

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cliform-tools/cli/internal/params"
)

var projectTagPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

func validateProjectTag(_ *params.Param, value any) (any, error) {
	s, _ := value.(string)
	if !projectTagPattern.MatchString(s) {
		return nil, fmt.Errorf("use lowercase letters, numbers, and underscores for project tags")
	}
	return value, nil
}

func validateContrasts(_ *params.Param, value any) (any, error) {
	if value == nil {
		return value, nil
	}
	pairs, err := params.AsSequence(value)
	if err != nil {
		return nil, err
	}
	for _, pair := range pairs {
		members, err := params.AsSequence(pair)
		if err != nil {
			return nil, err
		}
		if len(members) == 2 && members[0] == members[1] {
			return nil, fmt.Errorf("case and control names must be different")
		}
	}
	return value, nil
}

// New builds the demo tree. Actions write their reports to out.
func New(out io.Writer) *params.Command {
	return &params.Command{
		Name: "pipeline",
		Help: "Plan and publish an RNA-seq analysis run.",
		Subcommands: []*params.Command{
			configureCommand(out),
			publishCommand(out),
		},
	}
}

func configureCommand(out io.Writer) *params.Command {
	cmd := &params.Command{
		Name: "configure",
		Help: "Configure the pipeline with practical defaults for QC, normalization and output delivery.",
		Params: []*params.Param{
			params.Option(params.OptionSpec{
				Name:     "reads_r1",
				Opts:     []string{"--reads-r1"},
				Type:     params.PathType{Mode: params.PathFile, MustExist: true},
				Required: true,
				Help:     "Primary FASTQ file (read 1).",
			}),
			params.Option(params.OptionSpec{
				Name: "reads_r2",
				Opts: []string{"--reads-r2"},
				Type: params.PathType{Mode: params.PathFile, MustExist: true},
				Help: "Secondary FASTQ file (read 2) for paired-end runs.",
			}),
			params.Option(params.OptionSpec{
				Name:     "sample_metadata",
				Opts:     []string{"--sample-metadata"},
				Type:     params.PathType{Mode: params.PathFile, MustExist: true},
				Required: true,
				Help:     "Sample metadata sheet linking sample IDs to conditions.",
			}),
			params.Option(params.OptionSpec{
				Name:    "library_layout",
				Opts:    []string{"--library-layout"},
				Type:    params.ChoiceType{Choices: []string{"single-end", "paired-end"}},
				Default: "paired-end",
				Help:    "Sequencing library structure.",
			}),
			params.Option(params.OptionSpec{
				Name:    "normalization",
				Type:    params.ChoiceType{Choices: []string{"tpm", "cpm", "deseq2"}},
				Default: "tpm",
				Help:    "Normalization strategy for expression tables.",
			}),
			params.Option(params.OptionSpec{
				Name:      "contrast",
				Type:      params.TupleType{Types: []params.ParamType{params.StringType{}, params.StringType{}}},
				Multiple:  true,
				Callbacks: []params.Callback{validateContrasts},
				Help:      "Case/control condition pair. Repeat for multiple contrasts.",
			}),
			params.Option(params.OptionSpec{
				Name:    "expected_library_size",
				Opts:    []string{"--expected-library-size"},
				Type:    params.TupleType{Types: []params.ParamType{params.IntType{}, params.IntType{}}},
				Default: []any{int64(20_000_000), int64(60_000_000)},
				Help:    "Expected read depth window per sample.",
			}),
			params.Option(params.OptionSpec{
				Name:               "project_tag",
				Opts:               []string{"--project-tag"},
				Default:            "pilot_batch_1",
				Callbacks:          []params.Callback{validateProjectTag},
				ConfirmationPrompt: true,
				Help:               "Lowercase label for naming run outputs.",
			}),
			params.Option(params.OptionSpec{
				Name:    "min_read_length",
				Opts:    []string{"--min-read-length"},
				Type:    params.IntType{Min: 35, Max: 250, HasMin: true, HasMax: true},
				Default: int64(75),
				Help:    "Discard reads shorter than this threshold.",
			}),
			params.Option(params.OptionSpec{
				Name:    "max_n_content",
				Opts:    []string{"--max-n-content"},
				Type:    params.FloatType{Min: 0.0, Max: 0.25, HasMin: true, HasMax: true},
				Default: 0.05,
				Help:    "Maximum ambiguous-base fraction allowed per read.",
			}),
			params.Option(params.OptionSpec{
				Name:    "trim_adapters",
				Opts:    []string{"--trim-adapters"},
				IsFlag:  true,
				Default: true,
				Help:    "Enable adapter trimming.",
			}),
			params.Option(params.OptionSpec{
				Name:   "deduplicate",
				IsFlag: true,
				Help:   "Remove duplicate alignments after mapping.",
			}),
			params.Option(params.OptionSpec{
				Name:     "notify_channel",
				Opts:     []string{"--notify-channel"},
				Type:     params.ChoiceType{Choices: []string{"email", "slack", "none"}},
				Multiple: true,
				Help:     "Notification channels for run completion.",
			}),
			params.Option(params.OptionSpec{
				Name:    "output_dir",
				Opts:    []string{"--output-dir"},
				Type:    params.PathType{Mode: params.PathDir},
				Default: "rnaseq_results",
				Help:    "Directory used to store pipeline outputs.",
			}),
			params.Option(params.OptionSpec{
				Name:   "dry_run",
				Opts:   []string{"--dry-run"},
				IsFlag: true,
				Help:   "Validate config only, without running the pipeline.",
			}),
		},
		Action: func(args []any, kwargs map[string]any) error {
			fmt.Fprintln(out, "=== RNA-seq Pipeline Configurator ===")
			fmt.Fprintf(out, "Project tag: %v\n", kwargs["project_tag"])
			fmt.Fprintf(out, "Input R1: %v\n", kwargs["reads_r1"])
			fmt.Fprintf(out, "Input R2: %v\n", orText(kwargs["reads_r2"], "not used"))
			fmt.Fprintf(out, "Sample metadata: %v\n", kwargs["sample_metadata"])
			fmt.Fprintf(out, "Library layout: %v\n", kwargs["library_layout"])
			fmt.Fprintf(out, "Normalization mode: %v\n", kwargs["normalization"])
			fmt.Fprintf(out, "Contrasts: %s\n", contrastText(kwargs["contrast"]))
			if window, err := params.AsSequence(kwargs["expected_library_size"]); err == nil && len(window) == 2 {
				fmt.Fprintf(out, "Expected library size: %v to %v reads/sample\n", window[0], window[1])
			}
			fmt.Fprintf(out, "QC thresholds: min_read_length=%v, max_n=%v\n",
				kwargs["min_read_length"], kwargs["max_n_content"])
			fmt.Fprintf(out, "Trim adapters: %s\n", yesNo(kwargs["trim_adapters"]))
			fmt.Fprintf(out, "Deduplicate: %s\n", yesNo(kwargs["deduplicate"]))
			fmt.Fprintf(out, "Notify via: %s\n", channelText(kwargs["notify_channel"]))
			fmt.Fprintf(out, "Output directory: %v\n", kwargs["output_dir"])
			fmt.Fprintf(out, "Dry run: %s\n", enabledDisabled(kwargs["dry_run"]))
			fmt.Fprintln(out, "Configuration is complete and ready for execution.")
			return nil
		},
	}
	return cmd
}

func publishCommand(out io.Writer) *params.Command {
	return &params.Command{
		Name:       "publish",
		Help:       "Publish a finished run report.",
		Positional: []string{"report"},
		Params: []*params.Param{
			params.Argument(params.ArgumentSpec{
				Name: "report",
				Type: params.PathType{Mode: params.PathFile, MustExist: true, Readable: true},
				Help: "Report file to publish; '-' reads from standard input.",
			}),
			params.Option(params.OptionSpec{
				Name:      "destination",
				Opts:      []string{"--to-bucket"},
				IsFlag:    true,
				FlagValue: "bucket",
				Default:   true,
				Help:      "Upload the report to the results bucket.",
			}),
			params.Option(params.OptionSpec{
				Name:      "destination",
				Opts:      []string{"--to-share"},
				IsFlag:    true,
				FlagValue: "share",
				Help:      "Copy the report to the lab network share.",
			}),
			params.Option(params.OptionSpec{
				Name:    "generated_at",
				Opts:    []string{"--generated-at"},
				Type:    params.DateTimeType{},
				EnvVar:  "PIPELINE_REPORT_TIME",
				Default: "",
				Help:    "Timestamp recorded next to the report.",
			}),
			params.Option(params.OptionSpec{
				Name:    "verbose",
				Opts:    []string{"-v", "--verbose"},
				Type:    params.IntType{},
				IsCount: true,
				Help:    "Increase publish logging; repeat for more detail.",
			}),
			params.Option(params.OptionSpec{
				Name:   "confirm_publish",
				Opts:   []string{"--yes"},
				IsFlag: true,
				Prompt: "Publish the report now?",
				Help:   "Confirm publication without asking.",
			}),
		},
		Action: func(args []any, kwargs map[string]any) error {
			report := ""
			if len(args) > 0 {
				report = fmt.Sprintf("%v", args[0])
			}
			if ok, _ := kwargs["confirm_publish"].(bool); !ok {
				fmt.Fprintln(out, "Publication declined.")
				return nil
			}
			fmt.Fprintln(out, "=== Report Publisher ===")
			fmt.Fprintf(out, "Report: %s\n", report)
			fmt.Fprintf(out, "Destination: %v\n", kwargs["destination"])
			if ts := kwargs["generated_at"]; ts != nil && fmt.Sprintf("%v", ts) != "" {
				fmt.Fprintf(out, "Generated at: %v\n", ts)
			}
			if n, ok := kwargs["verbose"].(int64); ok && n > 0 {
				fmt.Fprintf(out, "Verbosity: %d\n", n)
			}
			fmt.Fprintln(out, "Report published.")
			return nil
		},
	}
}

func orText(v any, alt string) any {
	if v == nil || v == "" {
		return alt
	}
	return v
}

func yesNo(v any) string {
	if b, _ := v.(bool); b {
		return "yes"
	}
	return "no"
}

func enabledDisabled(v any) string {
	if b, _ := v.(bool); b {
		return "enabled"
	}
	return "disabled"
}

func contrastText(v any) string {
	pairs, err := params.AsSequence(v)
	if err != nil || len(pairs) == 0 {
		return "treated vs control"
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		members, err := params.AsSequence(pair)
		if err != nil || len(members) != 2 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%v vs %v", members[0], members[1]))
	}
	return strings.Join(parts, ", ")
}

func channelText(v any) string {
	channels, err := params.AsSequence(v)
	if err != nil || len(channels) == 0 {
		return "none"
	}
	parts := make([]string, len(channels))
	for i, c := range channels {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return strings.Join(parts, ", ")
}
