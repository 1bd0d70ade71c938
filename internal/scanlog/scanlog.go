// Copyright © 2026 The Gomon Project.

// Package scanlog reads the process records of a pool scan log.
package scanlog

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/zosmac/gocore"

	"github.com/zosmac/scantree/internal/proctree"
)

// maxLine bounds a log line; module paths can be long.
const maxLine = 1 << 20

// record matches one _EPROCESS line of the scan log.
var record = regexp.MustCompile(
	`^pool: 0x[0-9a-f]+ \| eprocess: (0x[0-9a-f]+) \| pid: (\d+) \| ppid: (\d+) \| name: ([^|]*) \| (.*)$`,
)

// Parse returns the process records of the log in order. Lines that are not
// process records are skipped.
func Parse(r io.Reader) ([]*proctree.Process, error) {
	var ps []*proctree.Process
	skipped := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if p := parseLine(sc.Text()); p != nil {
			ps = append(ps, p)
		} else {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, gocore.Error("scan", err)
	}

	logrus.WithFields(logrus.Fields{
		"records": len(ps),
		"skipped": skipped,
	}).Debug("parsed scan log")

	return ps, nil
}

// ParseFile parses the scan log at name.
func ParseFile(fs afero.Fs, name string) ([]*proctree.Process, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, gocore.Error("open", err)
	}
	defer f.Close()

	logrus.WithField("file", name).Debug("reading scan log")
	return Parse(f)
}

func parseLine(line string) *proctree.Process {
	m := record.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	pid, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	ppid, err := strconv.Atoi(m[3])
	if err != nil {
		return nil
	}
	return &proctree.Process{
		ID:   m[1],
		Pid:  proctree.Pid(pid),
		Ppid: proctree.Pid(ppid),
		Name: m[4],
		Path: m[5],
	}
}
