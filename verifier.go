package mipmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/registrohoras/mipmap/utils"
)

// ErrNotProjectRoot is returned when the root marker directory is not found
// in the working directory.
var ErrNotProjectRoot = errors.New("not in the project root directory")

// Status is the verification outcome of one icon.
type Status int

const (
	// StatusOK means the icon exists and has the expected dimensions.
	StatusOK Status = iota
	// StatusUnverified means the icon exists but its dimensions were not probed.
	StatusUnverified
	// StatusSizeMismatch means the icon dimensions differ from its density bucket.
	StatusSizeMismatch
	// StatusMissing means the icon file does not exist.
	StatusMissing
	// StatusDirMissing means the density directory of the icon does not exist.
	StatusDirMissing
	// StatusUnreadable means the icon exists but could not be read.
	StatusUnreadable
)

// String implements the fmt.Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnverified:
		return "unverified"
	case StatusSizeMismatch:
		return "size-mismatch"
	case StatusMissing:
		return "missing"
	case StatusDirMissing:
		return "dir-missing"
	case StatusUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Failed reports whether the status fails the verification.
// A size mismatch only fails it in strict mode.
func (s Status) Failed(strict bool) bool {
	switch s {
	case StatusMissing, StatusDirMissing, StatusUnreadable:
		return true
	case StatusSizeMismatch:
		return strict
	default:
		return false
	}
}

// Entry is the verification result of one expected icon.
type Entry struct {
	Artifact Artifact
	Path     string
	Status   Status
	Bytes    int64
	Width    int
	Height   int
	Detail   string
}

// Report aggregates the verification results of every expected icon.
type Report struct {
	BaseDir    string
	Entries    []Entry
	TotalBytes int64
	Strict     bool
	Probed     bool
}

// Passed reports whether every expected icon passed the verification.
func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

// Failures returns the entries failing the verification.
func (r *Report) Failures() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Status.Failed(r.Strict) {
			failed = append(failed, e)
		}
	}
	return failed
}

// Verifier checks the icons produced by the Generator.
type Verifier struct {
	// Prober reads the icon dimensions. Only the existence of the files
	// is checked when nil.
	Prober Prober
	// Strict turns dimension mismatches into failures.
	Strict bool
}

// NewVerifier returns a Verifier probing the icon dimensions from the image headers.
func NewVerifier(strict bool) *Verifier {
	return &Verifier{Prober: HeaderProber{}, Strict: strict}
}

// CheckRoot verifies that the root marker directory exists.
func CheckRoot(marker string) error {
	fi, err := os.Stat(marker)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w (%s not found)", ErrNotProjectRoot, marker)
	}
	return nil
}

// Verify checks every expected icon under baseDir. It never modifies the file system.
func (v *Verifier) Verify(baseDir string) *Report {
	rep := &Report{
		BaseDir: baseDir,
		Strict:  v.Strict,
		Probed:  v.Prober != nil,
	}

	for _, d := range Densities() {
		dir := filepath.Join(baseDir, d.Dir())
		fi, err := os.Stat(dir)
		dirMissing := err != nil || !fi.IsDir()

		for _, k := range Kinds() {
			art := Artifact{Density: d, Kind: k}
			e := Entry{Artifact: art, Path: art.Path(baseDir)}
			if dirMissing {
				e.Status = StatusDirMissing
			} else {
				v.check(&e)
				rep.TotalBytes += e.Bytes
			}
			rep.Entries = append(rep.Entries, e)
		}
	}
	return rep
}

func (v *Verifier) check(e *Entry) {
	fi, err := os.Stat(e.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.Status = StatusMissing
		} else {
			e.Status = StatusUnreadable
			e.Detail = err.Error()
		}
		return
	}
	if fi.IsDir() {
		e.Status = StatusUnreadable
		e.Detail = "is a directory"
		return
	}
	e.Bytes = fi.Size()

	if v.Prober == nil {
		e.Status = StatusUnverified
		return
	}
	w, h, err := v.Prober.Probe(e.Path)
	if err != nil {
		e.Status = StatusUnreadable
		e.Detail = err.Error()
		return
	}
	e.Width, e.Height = w, h

	size := e.Artifact.Density.Size
	if w == size && h == size {
		e.Status = StatusOK
	} else {
		e.Status = StatusSizeMismatch
	}
}

// Print writes the human readable report. The decorator colors the status lines.
func (r *Report) Print(w io.Writer, decorate utils.Decorator) {
	if decorate == nil {
		decorate = utils.PlainText
	}
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w, "Android Launcher Icons Verification")
	fmt.Fprintln(w, rule)

	var lastDir string
	for _, e := range r.Entries {
		dir := filepath.Dir(e.Path)
		if dir != lastDir {
			lastDir = dir
			if e.Status == StatusDirMissing {
				fmt.Fprintln(w, decorate("❌ Directory missing: "+dir, utils.ErrorMessage))
			} else {
				fmt.Fprintf(w, "\n📁 %s\n", dir)
			}
		}
		if e.Status == StatusDirMissing {
			continue
		}

		name := fmt.Sprintf("%-22s", e.Artifact.Kind.FileName())
		kb := utils.FormatKB(e.Bytes)
		size := e.Artifact.Density.Size

		switch e.Status {
		case StatusOK:
			fmt.Fprintln(w, decorate(fmt.Sprintf("  ✅ %s %dx%d (%s)", name, e.Width, e.Height, kb), utils.SuccessMessage))
		case StatusUnverified:
			fmt.Fprintln(w, decorate(fmt.Sprintf("  ✅ %s exists (%s) - cannot verify size (dimension probing not available)", name, kb), utils.SuccessMessage))
		case StatusSizeMismatch:
			msgType := utils.WarningMessage
			if r.Strict {
				msgType = utils.ErrorMessage
			}
			fmt.Fprintln(w, decorate(fmt.Sprintf("  ⚠️  %s %dx%d (expected %dx%d, %s)", name, e.Width, e.Height, size, size, kb), msgType))
		case StatusMissing:
			fmt.Fprintln(w, decorate(fmt.Sprintf("  ❌ %s MISSING", name), utils.ErrorMessage))
		case StatusUnreadable:
			fmt.Fprintln(w, decorate(fmt.Sprintf("  ❌ %s error reading file: %s", name, e.Detail), utils.ErrorMessage))
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "Total icons size: %s\n", utils.FormatKB(r.TotalBytes))

	if r.Passed() {
		fmt.Fprintln(w, decorate("✅ All launcher icons are present!", utils.SuccessMessage))
	} else {
		fmt.Fprintln(w, decorate("❌ Some icons are missing or have issues.", utils.ErrorMessage))
	}
}
