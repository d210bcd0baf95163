package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

// stringList accepts either a single YAML string or a sequence of strings.
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = stringList{s}
		return nil
	case yaml.SequenceNode:
		var s []string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = s
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", value.Line)
	}
}

// sendJob describes one templated email in a YAML file:
//
//	template: token_launch
//	params:
//	  name: Meteora
//	  symbol: MET
//	to: recipient@example.com
//	from: onboarding@resend.dev
//	subject: "New Token Launch: Meteora (MET)"
//	tags:
//	  - name: category
//	    value: token_launch
type sendJob struct {
	Params   mailer.Params `yaml:"params"`
	Template string        `yaml:"template"`
	From     string        `yaml:"from"`
	Subject  string        `yaml:"subject"`
	ReplyTo  string        `yaml:"reply_to"`
	To       stringList    `yaml:"to"`
	CC       stringList    `yaml:"cc"`
	BCC      stringList    `yaml:"bcc"`
	Tags     []mailer.Tag  `yaml:"tags"`
}

func readJob(path string) (sendJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sendJob{}, fmt.Errorf("read job file: %w", err)
	}
	return parseJob(data)
}

func parseJob(data []byte) (sendJob, error) {
	var job sendJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return sendJob{}, fmt.Errorf("parse job file: %w", err)
	}
	return job, nil
}

func (j sendJob) sendParams() mailer.SendParams {
	return mailer.SendParams{
		Template: j.Template,
		Params:   j.Params,
		To:       j.To,
		From:     j.From,
		Subject:  j.Subject,
		ReplyTo:  j.ReplyTo,
		CC:       j.CC,
		BCC:      j.BCC,
		Tags:     j.Tags,
	}
}
