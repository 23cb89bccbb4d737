package main

import (
	"os"

	"github.com/gfatag/maria/grammar"
	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/memio"
	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/mlog"
	"github.com/gfatag/maria/record"
	"github.com/gfatag/maria/resolver"
	"github.com/gfatag/maria/tagfile"
	"github.com/spf13/cobra"
)

var (
	outPath    string
	readLen    int
	mapQuality int
)

var alignCmd = &cobra.Command{
	Use:   "align <graph> <reads>",
	Short: "Resolve a MEM stream against a built tag-array index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlign(args[0], args[1], outPath)
	},
}

func init() {
	alignCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default stdout)")
	alignCmd.Flags().IntVar(&readLen, "query-len", 150, "query length reported in output records")
	alignCmd.Flags().IntVar(&mapQuality, "mapq", 60, "mapping quality reported in output records")
}

func runAlign(graphPath, readsPath, outPathFlag string) error {
	log := mlog.With("align")

	ni, err := loadNodeIndex(graphPath)
	if err != nil {
		return err
	}

	samples, err := tagfile.Load(graphPath + ".tag")
	if err != nil {
		return err
	}
	log.Infof("loaded %d tag-array samples", len(samples.SA))

	slpFile, err := os.Open(graphPath + ".slp")
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "opening grammar %s.slp", graphPath)
	}
	defer slpFile.Close()

	g, err := grammar.Load(slpFile)
	if err != nil {
		return err
	}

	memsFile, err := os.Open(readsPath + ".mems")
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "opening mems %s.mems", readsPath)
	}
	defer memsFile.Close()

	ptrsFile, err := os.Open(readsPath + ".pointers")
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "opening pointers %s.pointers", readsPath)
	}
	defer ptrsFile.Close()

	mems, err := memio.NewReader(memsFile, ptrsFile)
	if err != nil {
		return err
	}
	log.Infof("read %d mems", len(mems))

	r := resolver.New(samples, g, ni)

	var records []record.Record
	for _, m := range mems {
		matches, err := r.Resolve(m.RefPos, m.Length)
		if err != nil {
			return err
		}
		for _, match := range matches {
			records = append(records, record.Record{
				ReadID:     m.ReadID,
				QueryLen:   readLen,
				QueryStart: m.ReadPos,
				QueryEnd:   m.ReadPos + m.Length,
				Strand:     '+',
				PathString: match.PathString,
				PathLen:    match.PathLen,
				PathStart:  match.PathStart,
				PathEnd:    match.PathEnd,
				Residues:   m.Length,
				BlockLen:   m.Length,
				MapQ:       mapQuality,
			})
		}
	}

	out := os.Stdout
	if outPathFlag != "" {
		f, err := os.Create(outPathFlag)
		if err != nil {
			return merrors.Wrap(merrors.IoError, err, "creating output %s", outPathFlag)
		}
		defer f.Close()
		out = f
	}

	if err := record.WriteAll(out, records); err != nil {
		return err
	}
	log.Infof("wrote %d records", len(records))
	return nil
}

// loadNodeIndex reparses the graph file to rebuild the node index the
// resolver projects matches onto; the tag file persists only the
// sampled SA/tag pair, not the graph's node layout.
func loadNodeIndex(graphPath string) (*graphmodel.NodeIndex, error) {
	f, err := os.Open(graphPath)
	if err != nil {
		return nil, merrors.Wrap(merrors.IoError, err, "opening graph %s", graphPath)
	}
	defer f.Close()

	g, err := graphmodel.ParseGFA(f)
	if err != nil {
		return nil, err
	}
	return g.BuildNodeIndex()
}
