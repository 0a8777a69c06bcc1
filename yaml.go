package tabular

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML renders the table as a YAML sequence of mappings keyed by
// header. The document is built from yaml.Node values because the encoder
// sorts plain map keys, and key order must follow column order.
func writeYAML(w io.Writer, td *TableData, cfg config) error {
	cols, rows := td.typedRows(cfg)

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, col := range cols {
			key := &yaml.Node{}
			key.SetString(col.Header)
			val := &yaml.Node{}
			var v any
			if i < len(row) {
				v = row[i]
			}
			if v == nil {
				val.Kind = yaml.ScalarNode
				val.Tag = "!!null"
				val.Value = "null"
			} else if err := val.Encode(v); err != nil {
				return err
			}
			m.Content = append(m.Content, key, val)
		}
		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	if len(cfg.indent) > 0 {
		enc.SetIndent(len(cfg.indent))
	}
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
