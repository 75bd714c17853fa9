package simmeta_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tumorkit/internal/simmeta"
)

const sample = `Simulation metadata
written by the engine
{
  "bdm::Param": {"simulation_time_step": 0.01},
  "bdm::SimParam": {
    "total_sim_time": 100,
    "cell_radius": 9.5,
    "max_speed": 4,
    "initial_concentration_dox": 0,
    "unknown_thing": "x",
    "initial_concentration_nutrients": 1.0e-5,
    "viscosity": [1, 2]
  }
}
trailing line`

func writeMeta(dir, name, body string) string {
	path := filepath.Join(dir, name)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
	return path
}

var _ = Describe("Parse", func() {
	It("extracts the parameters under the filter in file order", func() {
		ps, err := simmeta.ParseBytes([]byte(sample), simmeta.DefaultFilter)
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(HaveLen(7))
		Expect(ps[0]).To(Equal(simmeta.Param{Key: "total_sim_time", Value: "100"}))
		Expect(ps[4].Value).To(Equal("x"))
		Expect(ps[6].Value).To(Equal("[1,2]"))
	})

	It("fails without a JSON object", func() {
		_, err := simmeta.ParseBytes([]byte("no braces here"), simmeta.DefaultFilter)
		Expect(err).To(MatchError(simmeta.ErrNoMetadata))
	})

	It("fails when the filter is missing", func() {
		_, err := simmeta.ParseBytes([]byte(sample), "bdm::Other")
		Expect(err).To(MatchError(simmeta.ErrFilterNotFound))
	})
})

var _ = Describe("Table", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("collects runs found below a folder", func() {
		writeMeta(dir, "output/run_a/metadata", `{"bdm::SimParam": {"b": 1, "a": 2}}`)
		writeMeta(dir, "output/run_b/metadata", `{"bdm::SimParam": {"b": 1, "a": 3}}`)
		writeMeta(dir, "output/run_b/states.csv", "ignored")

		files, err := simmeta.Search(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(HaveLen(2))

		table, err := simmeta.Collect(files, simmeta.DefaultFilter)
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Columns).To(Equal([]string{"a", "b"}))
		Expect(table.Rows).To(Equal([]string{"/run_a/metadata", "/run_b/metadata"}))

		table.Simplify()
		Expect(table.Columns).To(Equal([]string{"a"}))

		var buf bytes.Buffer
		Expect(table.EncodeCSV(&buf)).To(Succeed())
		Expect(buf.String()).To(Equal("filename,a\n/run_a/metadata,2\n/run_b/metadata,3\n"))
	})

	It("keeps the full path when it has no output segment", func() {
		Expect(simmeta.RowKey("/data/run/metadata")).To(Equal("/data/run/metadata"))
		Expect(simmeta.RowKey("/x/output/run/metadata")).To(Equal("/run/metadata"))
	})

	It("stops the row key at the next output segment", func() {
		Expect(simmeta.RowKey("/x/output/run_a/output/metadata")).To(Equal("/run_a/"))
		Expect(simmeta.RowKey("/x/outputs/run/metadata")).To(Equal("s/run/metadata"))
	})

	It("rejects runs that share a row key", func() {
		writeMeta(dir, "first/output/run/metadata", `{"bdm::SimParam": {"a": 1}}`)
		writeMeta(dir, "second/output/run/metadata", `{"bdm::SimParam": {"a": 2}}`)

		files, err := simmeta.Search(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(HaveLen(2))

		_, err = simmeta.Collect(files, simmeta.DefaultFilter)
		Expect(err).To(MatchError(simmeta.ErrDuplicateRow))
		Expect(err.Error()).To(ContainSubstring("/run/metadata"))
	})
})

var _ = Describe("Translate", func() {
	It("renames known parameters and drops unused ones", func() {
		ps, err := simmeta.ParseBytes([]byte(sample), simmeta.DefaultFilter)
		Expect(err).NotTo(HaveOccurred())

		tr := simmeta.Translate(ps)
		keys := make([]string, len(tr))
		for i, p := range tr {
			keys[i] = p.Key
		}
		Expect(keys).To(Equal([]string{"T", "r_p", "u_n(t=0)", `\eta (not present in paper)`}))
		Expect(tr[2].Value).To(Equal("1.0e-5"))
	})

	It("writes a LaTeX list ending with a period", func() {
		var buf bytes.Buffer
		err := simmeta.EncodeLatex(&buf, simmeta.Params{{Key: "T", Value: "100"}, {Key: "r_p", Value: "9.5"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("$T = 100$,\n$r_p = 9.5$."))
	})

	It("writes the LaTeX list to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "metadata.tex")
		Expect(simmeta.WriteLatex(path, simmeta.Params{{Key: "c_r", Value: "1"}})).To(Succeed())
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("$c_r = 1$."))
	})
})
