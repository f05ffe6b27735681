// Package jobfile reads and validates batch translation job documents.
package jobfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed job.schema.json
var jobSchemaJSON string

// Job is one validated batch translation job.
type Job struct {
	JobVersion string   `json:"job_version"`
	Provider   string   `json:"provider,omitempty"`
	Source     string   `json:"source,omitempty"`
	Target     string   `json:"target"`
	Texts      []string `json:"texts"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// Load reads a job file and validates it.
func Load(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return Validate(raw)
}

// Validate checks a raw job document against the embedded schema and
// the semantic rules the schema cannot express.
func Validate(raw json.RawMessage) (*Job, error) {
	value, err := decodeStrictJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decode job JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize job JSON: %w", err)
	}

	var job Job
	if err := json.Unmarshal(normalized, &job); err != nil {
		return nil, fmt.Errorf("unmarshal job: %w", err)
	}

	if err := validateSemantics(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		if err := compiler.AddResource("job.schema.json", strings.NewReader(jobSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("job.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("job document is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("job document contains trailing content")
	}

	return value, nil
}

func validateSemantics(job *Job) error {
	if job == nil {
		return fmt.Errorf("job is nil")
	}
	if strings.TrimSpace(job.Target) == "" {
		return fmt.Errorf("target must not be empty")
	}
	for i, text := range job.Texts {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("texts[%d] must not be empty", i)
		}
	}
	return nil
}
