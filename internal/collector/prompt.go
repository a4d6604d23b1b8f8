package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"diabetesrisk/internal/schema"
)

var ErrAborted = errors.New("questionnaire aborted")

// Prompter abstracts the terminal so prompt flows can be tested without one.
type Prompter interface {
	Select(ctx context.Context, message, help string, options []string, defaultIndex int) (int, error)
	Input(ctx context.Context, message, help, def string, validate func(string) error) (string, error)
}

// PromptSource asks one question per field. Section headings go to Out
// when it is set.
type PromptSource struct {
	Prompter Prompter
	Out      io.Writer
}

func (p PromptSource) BeginSection(number int, title string) {
	if p.Out != nil {
		fmt.Fprintf(p.Out, "\n%d. %s\n", number, title)
	}
}

func (p PromptSource) Value(ctx context.Context, spec schema.FieldSpec) (float64, bool, error) {
	message := schema.PlainText(spec.Label)
	help := schema.PlainText(spec.Description)

	switch spec.Kind {
	case schema.KindBinary, schema.KindDiscrete:
		values := spec.Choices()
		options := make([]string, len(values))
		def := 0
		for i, v := range values {
			options[i] = choiceLabel(spec, i, v)
			if v == spec.Default {
				def = i
			}
		}
		idx, err := p.Prompter.Select(ctx, message, help, options, def)
		if err != nil {
			return 0, false, err
		}
		if idx < 0 || idx >= len(values) {
			return 0, false, nil
		}
		return values[idx], true, nil
	default:
		validate := func(s string) error {
			_, err := spec.Parse(s)
			return err
		}
		if spec.Kind == schema.KindContinuous {
			message = fmt.Sprintf("%s [%s-%s]", message, schema.FormatValue(spec.Min), schema.FormatValue(spec.Max))
		}
		raw, err := p.Prompter.Input(ctx, message, help, schema.FormatValue(spec.Default), validate)
		if err != nil {
			return 0, false, err
		}
		v, err := spec.Parse(raw)
		if err != nil {
			return 0, false, nil
		}
		return v, true, nil
	}
}

func choiceLabel(spec schema.FieldSpec, i int, v float64) string {
	if spec.Kind == schema.KindBinary && i < len(spec.Options) {
		return spec.Options[i].Label
	}
	return schema.FormatValue(v)
}

// SurveyPrompter drives the prompts with survey on the process terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Select(ctx context.Context, message, help string, options []string, defaultIndex int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prompt := &survey.Select{
		Message:  message,
		Help:     help,
		Options:  options,
		PageSize: len(options),
	}
	if defaultIndex >= 0 && defaultIndex < len(options) {
		prompt.Default = options[defaultIndex]
	}
	var idx int
	if err := survey.AskOne(prompt, &idx); err != nil {
		return 0, translateSurveyErr(err)
	}
	return idx, nil
}

func (SurveyPrompter) Input(ctx context.Context, message, help, def string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Input{Message: message, Help: help, Default: def}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(strings.TrimSpace(s))
		}))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
