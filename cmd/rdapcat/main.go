// Command rdapcat decodes RDAP JSON responses, reports what is wrong with them and
// prints them back in canonical form.
//
//	rdapcat fmt domain.json
//	curl -s https://rdap.org/domain/example.com | rdapcat summary
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/i18n"
	"github.com/reoring/rdap/value"
)

func main() {
	a := kingpin.New(filepath.Base(os.Args[0]), "Decode, check and re-encode RDAP responses.")
	configFile := a.Flag("configfile", "config file").Short('c').ExistingFile()
	output := a.Flag("output", "output format: json or yaml").Short('o').Enum("json", "yaml")
	lang := a.Flag("lang", "language of issue messages: en or ja").Enum("en", "ja")
	logLevel := a.Flag("log-level", "log level").String()
	strict := a.Flag("strict", "reject unknown members and duplicate keys").Bool()
	maxDepth := a.Flag("max-depth", "maximum nesting of RDAP objects").Int()
	a.HelpFlag.Short('h')

	fmtCmd := a.Command("fmt", "Decode documents and print their canonical encoding.")
	fmtFiles := fmtCmd.Arg("files", "input files, - for stdin").Strings()
	checkCmd := a.Command("check", "Decode documents and report issues only.")
	checkFiles := checkCmd.Arg("files", "input files, - for stdin").Strings()
	summaryCmd := a.Command("summary", "Print the key members of each document.")
	summaryFiles := summaryCmd.Arg("files", "input files, - for stdin").Strings()

	cmd, err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "Error parsing commandline arguments"))
		a.Usage(os.Args[1:])
		os.Exit(2)
	}

	cfg, err := getConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *lang != "" {
		cfg.Lang = *lang
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *strict {
		cfg.Strict = true
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("[ERROR] : %v", err)
	}
	log.SetLevel(level)
	i18n.SetLanguage(cfg.Lang)

	r := &runner{
		cfg:    cfg,
		out:    os.Stdout,
		pretty: isatty.IsTerminal(os.Stdout.Fd()),
	}
	var ok bool
	switch cmd {
	case fmtCmd.FullCommand():
		ok = r.each(*fmtFiles, r.format)
	case checkCmd.FullCommand():
		ok = r.each(*checkFiles, nil)
	case summaryCmd.FullCommand():
		ok = r.each(*summaryFiles, r.summary)
	}
	if !ok {
		os.Exit(1)
	}
}

type runner struct {
	cfg    *configuration
	out    io.Writer
	pretty bool
}

// each decodes every named input (stdin when none) and hands it to fn. It reports
// whether all inputs decoded and printed cleanly.
func (r *runner) each(files []string, fn func(*document) error) bool {
	if len(files) == 0 {
		files = []string{"-"}
	}
	ok := true
	for _, name := range files {
		entry := log.WithField("file", name)
		data, err := readInput(name)
		if err != nil {
			entry.Error(err)
			ok = false
			continue
		}
		doc, err := decodeDocument(context.Background(), data, r.cfg.parseOpt())
		if err != nil {
			logIssues(entry, err)
			ok = false
			continue
		}
		entry.WithField("objectClassName", doc.kind).Debug("decoded")
		if fn == nil {
			continue
		}
		if err := fn(doc); err != nil {
			entry.Error(errors.Wrapf(err, "writing %s", name))
			ok = false
		}
	}
	return ok
}

func (r *runner) format(doc *document) error { return r.write(rdap.Encode(doc.record)) }

func (r *runner) summary(doc *document) error { return r.write(summarize(doc)) }

func (r *runner) write(tree *value.Object) error {
	var b []byte
	var err error
	switch {
	case r.cfg.Output == "yaml":
		b, err = value.MarshalYAML(tree)
	case r.pretty:
		b, err = value.MarshalIndent(tree, "", "  ")
	default:
		b, err = value.Marshal(tree)
	}
	if err != nil {
		return err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	_, err = r.out.Write(b)
	return err
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "reading stdin")
	}
	data, err := os.ReadFile(name)
	return data, errors.Wrapf(err, "reading %s", name)
}

// logIssues writes one entry per issue so each carries its own path and code.
func logIssues(entry *log.Entry, err error) {
	iss, ok := rdap.AsIssues(err)
	if !ok {
		entry.Error(err)
		return
	}
	entry = entry.WithField("issues", len(iss))
	for _, is := range iss {
		entry.WithFields(log.Fields{"path": is.Path, "code": is.Code}).Error(is.Message)
	}
}
