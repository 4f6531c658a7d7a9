package iconset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wayne214/iconset/utils"
)

// filePerm is the permission used for newly created icon files.
const filePerm = 0644

// Result holds the outcome of writing a single icon.
type Result struct {
	Name string
	Err  error
}

// Emitter writes icons into a directory and reports each file on Out.
type Emitter struct {
	Dir   string
	Icons []Icon
	Out   io.Writer

	deco utils.Decorator
}

// NewEmitter returns an emitter writing the built-in icons into dir and
// reporting on the standard output.
func NewEmitter(dir string) *Emitter {
	return &Emitter{
		Dir:   dir,
		Icons: Icons(),
		Out:   os.Stdout,
	}
}

// Emit writes every icon in order. A failing icon is reported and skipped,
// it never prevents the remaining ones from being written.
// The returned results follow the order of e.Icons.
func (e *Emitter) Emit() []Result {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	e.deco = utils.Decorator{Enabled: utils.IsTerminal(out)}

	results := make([]Result, 0, len(e.Icons))
	for _, ic := range e.Icons {
		res := Result{Name: ic.Name, Err: e.emit(ic)}
		e.printStatus(out, res)
		results = append(results, res)
	}
	return results
}

// emit decodes the icon and writes it to its destination file.
func (e *Emitter) emit(ic Icon) error {
	data, err := ic.Decode()
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(e.Dir, ic.Name), data)
}

// writeFile creates or truncates path and writes data into it.
// The partially written file is removed if the write fails.
func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close the destination file: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("unable to write the destination file: %w", err)
	}
	return nil
}

// printStatus displays the outcome of a single icon.
func (e *Emitter) printStatus(w io.Writer, res Result) {
	if res.Err != nil {
		fmt.Fprintln(w, e.deco.Text(
			fmt.Sprintf("failed to create %s: %v", res.Name, res.Err), utils.ErrorMessage,
		))
		return
	}
	fmt.Fprintf(w, "created %s\n", e.deco.Text(res.Name, utils.SuccessMessage))
}
