package main

import (
	"os"

	"github.com/gfatag/maria/graphmodel"
	"github.com/gfatag/maria/merrors"
	"github.com/gfatag/maria/mlog"
	"github.com/gfatag/maria/pfp"
	"github.com/gfatag/maria/tagfile"
	"github.com/gfatag/maria/tagindex"
	"github.com/spf13/cobra"
)

var triggerFile string

var indexCmd = &cobra.Command{
	Use:   "index <graph>",
	Short: "Build a tag-array index for a segment/path graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndex(args[0], triggerFile)
	},
}

func init() {
	indexCmd.Flags().StringVarP(&triggerFile, "triggers", "t", "", "trigger string file (required)")
	indexCmd.MarkFlagRequired("triggers")
}

func runIndex(graphPath, triggerPath string) error {
	log := mlog.With("index")

	graphFile, err := os.Open(graphPath)
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "opening graph %s", graphPath)
	}
	defer graphFile.Close()

	g, err := graphmodel.ParseGFA(graphFile)
	if err != nil {
		return err
	}
	log.Infof("parsed graph: %d segments, %d paths", len(g.Segments), len(g.Paths))

	ni, err := g.BuildNodeIndex()
	if err != nil {
		return err
	}

	trigFile, err := os.Open(triggerPath)
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "opening trigger file %s", triggerPath)
	}
	defer trigFile.Close()

	triggers, err := pfp.LoadTriggers(trigFile)
	if err != nil {
		return err
	}
	log.Infof("loaded %d triggers of width %d", triggers.Len(), triggers.Width)

	pathSeqs, err := expandPaths(g)
	if err != nil {
		return err
	}

	parse, err := pfp.ParsePaths(pathSeqs, triggers)
	if err != nil {
		return err
	}
	log.Infof("parsed %d paths into %d dictionary phrases", len(pathSeqs), len(parse.Dictionary.Phrases))

	derived, err := tagindex.Build(parse, triggers.Width)
	if err != nil {
		return err
	}

	triples := derived.Stream()
	log.Infof("streamed %d suffix-array triples", len(triples))

	samples, err := tagindex.Sample(triples, ni)
	if err != nil {
		return err
	}
	log.Infof("sampled %d run-boundary entries", len(samples.SA))

	outPath := graphPath + ".tag"
	out, err := os.Create(outPath)
	if err != nil {
		return merrors.Wrap(merrors.IoError, err, "creating tag file %s", outPath)
	}
	defer out.Close()

	if err := tagfile.Write(out, samples); err != nil {
		return err
	}
	log.Infof("wrote %s", outPath)
	return nil
}

// expandPaths returns, per path, the concatenated oriented-segment byte
// sequence pfp.ParsePaths phrase-splits. The '$' path terminator is
// supplied by pfp's own sentinel, not here.
func expandPaths(g *graphmodel.Graph) ([][]byte, error) {
	seqs := make([][]byte, len(g.Paths))
	for i, p := range g.Paths {
		var seq []byte
		for _, os := range p.Segments {
			expanded, err := g.Expand(os)
			if err != nil {
				return nil, err
			}
			seq = append(seq, expanded...)
		}
		seqs[i] = seq
	}
	return seqs, nil
}
