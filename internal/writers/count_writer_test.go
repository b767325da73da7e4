package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fqgen/pkg/api"
)

func TestWriteCountText_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.CountV1{
		{File: "a.fastq", Records: 4, Bases: 300, MinLen: 75, MaxLen: 75, MeanLen: 75},
		{File: "b.fastq.gz", Records: 2, Bases: 100, MinLen: 40, MaxLen: 60, MeanLen: 50},
	}
	if err := WriteCountText(&buf, rows, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != CountTSVHeader {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "a.fastq\t4\t300\t75\t75\t75.00" {
		t.Fatalf("row = %q", lines[1])
	}
	if lines[2] != "b.fastq.gz\t2\t100\t40\t60\t50.00" {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestWriteCountText_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCountText(&buf, []api.CountV1{{File: "-"}}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "records") {
		t.Fatalf("unexpected header:\n%s", buf.String())
	}
}

func TestWriteCountJSON_Roundtrip(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.CountV1{
		{File: "a.fastq", Records: 4, Bases: 300, MinLen: 75, MaxLen: 75, MeanLen: 75},
	}
	if err := WriteCountJSON(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.CountV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("json roundtrip: %v len=%d", err, len(got))
	}
	if got[0] != rows[0] {
		t.Fatalf("got %+v want %+v", got[0], rows[0])
	}
}

func TestCountJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartCountJSONLWriter(&buf, 2)
	in <- api.CountV1{File: "a.fastq", Records: 4, Bases: 300, MinLen: 75, MaxLen: 75, MeanLen: 75}
	in <- api.CountV1{File: "b.fastq", Records: 1, Bases: 10, MinLen: 10, MaxLen: 10, MeanLen: 10}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var n int
	for sc.Scan() {
		n++
		var v api.CountV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}
