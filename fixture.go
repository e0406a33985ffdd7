package main

import (
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Fixture is the data the demo runs over.
type Fixture struct {
	Person  Person  `yaml:"person"`
	Numbers []int32 `yaml:"numbers"`
	Scores  Scores  `yaml:"scores"`
}

func DefaultFixture() *Fixture {
	return &Fixture{
		Person:  NewPerson("Alice", 30),
		Numbers: []int32{1, 2, 3, 4, 5},
		Scores: Scores{
			"Alice": 95,
			"Bob":   87,
		},
	}
}

// LoadFixture reads a YAML fixture. An empty name yields the default fixture;
// a named file must exist.
func LoadFixture(filename string) (*Fixture, error) {
	if filename == "" {
		return DefaultFixture(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("open: %w", err)
	}
	defer f.Close()
	contents, err := io.ReadAll(f)
	if err != nil {
		return nil, xerrors.Errorf("read: %w", err)
	}
	fx := &Fixture{}
	if err := yaml.Unmarshal(contents, fx); err != nil {
		return nil, xerrors.Errorf("unmarshal: %w", err)
	}
	if fx.Scores == nil {
		fx.Scores = Scores{}
	}
	if err := fx.Validate(); err != nil {
		return nil, xerrors.Errorf("validate %s: %w", filename, err)
	}
	return fx, nil
}

func (fx *Fixture) Validate() error {
	if fx.Person.Name == "" {
		return xerrors.New("person name is empty")
	}
	return nil
}

func (fx *Fixture) Marshal() ([]byte, error) {
	contents, err := yaml.Marshal(fx)
	if err != nil {
		return nil, xerrors.Errorf("marshal: %w", err)
	}
	return contents, nil
}
