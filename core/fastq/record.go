// core/fastq/record.go
package fastq

import "io"

// Record is one FASTQ entry. Name is stored without the leading '@'.
type Record struct {
	Name string
	Seq  []byte
	Qual []byte
}

// Format renders the four-line wire form: "@name\nseq\n+\nqual\n".
func (r Record) Format() []byte {
	b := make([]byte, 0, len(r.Name)+len(r.Seq)+len(r.Qual)+6)
	b = append(b, '@')
	b = append(b, r.Name...)
	b = append(b, '\n')
	b = append(b, r.Seq...)
	b = append(b, '\n', '+', '\n')
	b = append(b, r.Qual...)
	b = append(b, '\n')
	return b
}

// Write emits r to w in wire form.
func Write(w io.Writer, r Record) error {
	_, err := w.Write(r.Format())
	return err
}
