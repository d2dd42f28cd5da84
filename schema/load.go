package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/tvm-codegen/errors"
)

// Document is the YAML form of a resolved contract graph.
//
//	types:
//	  - name: Increment
//	    kind: message
//	    header: 0x1234abcd
//	    fields:
//	      - {name: by, type: Int, bits: 32}
//	  - name: Counter
//	    kind: contract
//	    fields:
//	      - {name: counter, type: Int}
//	    receivers:
//	      - {direction: internal, kind: binary, message: Increment, name: msg,
//	         body: ["$self'counter += $msg'by;"]}
//	    functions:
//	      - {name: count, getter: true, returns: Int,
//	         body: ["return ($self, $self'counter);"]}
type Document struct {
	Types []TypeDoc `yaml:"types"`
}

// TypeDoc describes one type.
type TypeDoc struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	Header     string        `yaml:"header,omitempty"`
	Fields     []FieldDoc    `yaml:"fields,omitempty"`
	Interfaces []string      `yaml:"interfaces,omitempty"`
	Receivers  []ReceiverDoc `yaml:"receivers,omitempty"`
	Functions  []FunctionDoc `yaml:"functions,omitempty"`
}

// FieldDoc describes a field or parameter.
type FieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Bits int    `yaml:"bits,omitempty"`
}

// ReceiverDoc describes one receiver. Direction is internal, external or
// bounce; Kind is binary, empty, comment, comment-fallback or fallback.
type ReceiverDoc struct {
	Direction string   `yaml:"direction"`
	Kind      string   `yaml:"kind"`
	Message   string   `yaml:"message,omitempty"`
	Name      string   `yaml:"name,omitempty"`
	Text      *string  `yaml:"text,omitempty"`
	Bounced   bool     `yaml:"bounced,omitempty"`
	Body      []string `yaml:"body,omitempty"`
}

// FunctionDoc describes a getter or plain function.
type FunctionDoc struct {
	Name    string     `yaml:"name"`
	Getter  bool       `yaml:"getter,omitempty"`
	Params  []FieldDoc `yaml:"params,omitempty"`
	Returns string     `yaml:"returns,omitempty"`
	Body    []string   `yaml:"body,omitempty"`
}

// Load reads, decodes and validates a contract description file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read "+path)
	}
	return Parse(data, path)
}

// Parse decodes and validates a contract description.
// The name argument is used only for error messages.
func Parse(data []byte, name string) (*Graph, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.ParseFailed(name, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, err
	}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Graph converts the document into a resolved graph.
func (d *Document) Graph() (*Graph, error) {
	g := NewGraph()
	for _, td := range d.Types {
		t, err := td.typeDescription()
		if err != nil {
			return nil, err
		}
		if err := g.Add(t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (td *TypeDoc) typeDescription() (*TypeDescription, error) {
	path := []string{td.Name}
	t := &TypeDescription{
		Name:       td.Name,
		Kind:       TypeKind(td.Kind),
		Interfaces: td.Interfaces,
	}
	switch t.Kind {
	case KindContract, KindStruct, KindMessage, KindTrait:
	case "":
		t.Kind = KindStruct
	default:
		return nil, errors.InvalidInput(errors.PhaseLoad, path, fmt.Sprintf("unknown type kind %q", td.Kind))
	}

	if td.Header != "" {
		h, err := strconv.ParseUint(td.Header, 0, 32)
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(path...).Cause(err).Detail("header %q", td.Header).Build()
		}
		header := uint32(h)
		t.Header = &header
	}

	for _, fd := range td.Fields {
		ref, err := ParseTypeRef(fd.Type)
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(td.Name, fd.Name).Cause(err).Build()
		}
		t.Fields = append(t.Fields, Field{Name: fd.Name, Type: ref, Bits: fd.Bits})
	}

	for i, rd := range td.Receivers {
		sel, err := rd.selector()
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(td.Name, "receivers", strconv.Itoa(i)).Cause(err).Build()
		}
		t.Receivers = append(t.Receivers, ReceiverDescription{Selector: sel, Body: statements(rd.Body)})
	}

	for _, fd := range td.Functions {
		f := &FunctionDescription{
			Name:     fd.Name,
			Self:     td.Name,
			IsGetter: fd.Getter,
			Returns:  Void(),
			Body:     statements(fd.Body),
		}
		if fd.Returns != "" {
			ref, err := ParseTypeRef(fd.Returns)
			if err != nil {
				return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
					Path(td.Name, fd.Name, "returns").Cause(err).Build()
			}
			f.Returns = ref
		}
		for _, pd := range fd.Params {
			ref, err := ParseTypeRef(pd.Type)
			if err != nil {
				return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
					Path(td.Name, fd.Name, pd.Name).Cause(err).Build()
			}
			f.Params = append(f.Params, Param{Name: pd.Name, Type: ref})
		}
		t.Functions = append(t.Functions, f)
	}
	return t, nil
}

func (rd *ReceiverDoc) selector() (Selector, error) {
	var dir Direction
	switch rd.Direction {
	case "internal":
		dir = Internal
	case "external":
		dir = External
	case "bounce":
		switch rd.Kind {
		case "binary":
			if rd.Message == "" {
				return nil, fmt.Errorf("bounce binary receiver without message type")
			}
			return BounceBinary{Type: rd.Message, Name: nameOr(rd.Name, "msg"), Bounced: rd.Bounced}, nil
		case "fallback":
			return BounceFallback{Name: nameOr(rd.Name, "msg")}, nil
		}
		return nil, fmt.Errorf("unknown bounce receiver kind %q", rd.Kind)
	default:
		return nil, fmt.Errorf("unknown direction %q", rd.Direction)
	}

	switch rd.Kind {
	case "binary":
		if rd.Message == "" {
			return nil, fmt.Errorf("binary receiver without message type")
		}
		return Binary{Dir: dir, Type: rd.Message, Name: nameOr(rd.Name, "msg")}, nil
	case "empty":
		return Empty{Dir: dir}, nil
	case "comment":
		if rd.Text == nil {
			return nil, fmt.Errorf("comment receiver without text")
		}
		return Comment{Dir: dir, Text: *rd.Text}, nil
	case "comment-fallback":
		return CommentFallback{Dir: dir, Name: nameOr(rd.Name, "msg")}, nil
	case "fallback":
		return Fallback{Dir: dir, Name: nameOr(rd.Name, "msg")}, nil
	}
	return nil, fmt.Errorf("unknown receiver kind %q", rd.Kind)
}

func nameOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

func statements(lines []string) []Statement {
	out := make([]Statement, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		out = append(out, RawStatement{
			Text:   text,
			Return: text == "return;" || strings.HasPrefix(text, "return ") || strings.HasPrefix(text, "return("),
		})
	}
	return out
}
