package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	gzip "github.com/klauspost/pgzip"
)

// ErrMalformed indicates input the FASTA parser rejected, such as sequence
// data before the first '>' header.
var ErrMalformed = errors.New("fasta: malformed input")

// LineWidth is the column at which Writer wraps sequence lines.
const LineWidth = 60

// bufferSize is the read buffer; 1MB like a typical sequencing reader.
const bufferSize = 1 << 20

// Record is one FASTA entry. ID is the header up to the first space and
// Desc the remainder.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// template is cloned by the parser for every record. The gapped DNA alphabet
// is only a label: letters are not validated, so any byte survives.
func template() *linear.Seq {
	return linear.NewSeq("", nil, alphabet.DNAgapped)
}

// Reader scans records from an io.Reader.
type Reader struct {
	br      *bufio.Reader
	fr      *biofasta.Reader
	checked bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	br := bufio.NewReaderSize(r, bufferSize)

	return &Reader{br: br, fr: biofasta.NewReader(br, template())}
}

// header fails unless the first non-blank byte of the input is '>'.
func (r *Reader) header() error {
	for {
		b, err := r.br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if unicode.IsSpace(rune(b)) {
			continue
		}
		if b != '>' {
			return fmt.Errorf("%w: sequence data before first header", ErrMalformed)
		}

		return r.br.UnreadByte()
	}
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	if !r.checked {
		r.checked = true
		if err := r.header(); err != nil {
			return Record{}, err
		}
	}
	s, err := r.fr.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return fromSequence(s), nil
}

// ReadAll returns every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// fromSequence copies s into a Record, upper-casing letters and dropping
// whitespace left inside sequence lines.
func fromSequence(s seq.Sequence) Record {
	var (
		b = make([]byte, 0, s.Len())
		c byte
		i int
	)
	for i = s.Start(); i < s.End(); i++ {
		c = byte(s.At(i).L)
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		b = append(b, c)
	}

	return Record{
		ID:   strings.TrimSpace(s.Name()),
		Desc: strings.TrimSpace(s.Description()),
		Seq:  string(b),
	}
}

// Writer writes records with wrapped sequence lines.
type Writer struct {
	bw *bufio.Writer
	fw *biofasta.Writer
}

// NewWriter wraps w; call Flush when done.
func NewWriter(w io.Writer) *Writer {
	var bw = bufio.NewWriter(w)
	return &Writer{bw: bw, fw: biofasta.NewWriter(bw, LineWidth)}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	var s = linear.NewSeq(rec.ID, alphabet.BytesToLetters([]byte(rec.Seq)), alphabet.DNAgapped)
	s.Desc = rec.Desc
	_, err := w.fw.Write(s)

	return err
}

// Flush flushes buffered output.
func (w *Writer) Flush() error { return w.bw.Flush() }

// File is a reader or writer bound to a file, possibly gzip-wrapped.
type File struct {
	*Reader
	*Writer
	f  *os.File
	gr *gzip.Reader
	gw *gzip.Writer
}

// Open opens path for reading, decompressing ".gz" files.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var out = &File{f: f}
	if !strings.HasSuffix(path, ".gz") {
		out.Reader = NewReader(f)
		return out, nil
	}
	if out.gr, err = gzip.NewReader(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	out.Reader = NewReader(out.gr)

	return out, nil
}

// Create creates path for writing, compressing when it ends in ".gz".
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	var out = &File{f: f}
	if !strings.HasSuffix(path, ".gz") {
		out.Writer = NewWriter(f)
		return out, nil
	}
	if out.gw, err = gzip.NewWriterLevel(f, gzip.BestCompression); err != nil {
		f.Close()
		return nil, fmt.Errorf("fasta: create %s: %w", path, err)
	}
	out.Writer = NewWriter(out.gw)

	return out, nil
}

// Close flushes pending output and closes the file.
func (f *File) Close() error {
	var errs []error
	if f.Writer != nil {
		errs = append(errs, f.Writer.Flush())
	}
	if f.gw != nil {
		errs = append(errs, f.gw.Close())
	}
	if f.gr != nil {
		errs = append(errs, f.gr.Close())
	}
	errs = append(errs, f.f.Close())

	return errors.Join(errs...)
}

// Stat reports the size of the underlying file.
func (f *File) Stat() (os.FileInfo, error) { return f.f.Stat() }
