package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// annotation flags that keep an annotation off screen
const (
	annotInvisible = 1 << 0
	annotHidden    = 1 << 1
	annotNoView    = 1 << 5
)

type pageInfo struct {
	ctx   *model.Context
	sizes []types.Dim
}

func readPageInfo(path string) (*pageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	boundaries, err := ctx.PageBoundaries(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read page boundaries: %w", err)
	}

	sizes := make([]types.Dim, len(boundaries))
	for i, pb := range boundaries {
		dim := pb.CropBox().Dimensions()
		if pb.Rot%180 != 0 {
			dim.Width, dim.Height = dim.Height, dim.Width
		}
		sizes[i] = dim
	}

	return &pageInfo{ctx: ctx, sizes: sizes}, nil
}

func (p *pageInfo) pageCount() int {
	return len(p.sizes)
}

func (p *pageInfo) hasColorAnnotations(index int) (bool, error) {
	pageDict, _, _, err := p.ctx.PageDict(index+1, false)
	if err != nil {
		return false, fmt.Errorf("failed to read page %d: %w", index+1, err)
	}
	if pageDict == nil {
		return false, nil
	}

	obj, found := pageDict.Find("Annots")
	if !found {
		return false, nil
	}
	annots, err := p.ctx.DereferenceArray(obj)
	if err != nil {
		return false, fmt.Errorf("failed to read annotations of page %d: %w", index+1, err)
	}

	for _, a := range annots {
		annot, err := p.ctx.DereferenceDict(a)
		if err != nil || annot == nil {
			continue
		}
		if !visible(annot) {
			continue
		}
		for _, key := range []string{"C", "IC"} {
			if p.chromaticEntry(annot, key) {
				return true, nil
			}
		}
	}

	return false, nil
}

func visible(annot types.Dict) bool {
	if subtype := annot.NameEntry("Subtype"); subtype != nil {
		switch *subtype {
		case "Popup", "Link":
			return false
		}
	}
	if flags := annot.IntEntry("F"); flags != nil {
		if *flags&(annotInvisible|annotHidden|annotNoView) != 0 {
			return false
		}
	}
	return true
}

func (p *pageInfo) chromaticEntry(annot types.Dict, key string) bool {
	obj, found := annot.Find(key)
	if !found {
		return false
	}
	arr, err := p.ctx.DereferenceArray(obj)
	if err != nil {
		return false
	}

	comps := make([]float64, 0, len(arr))
	for _, o := range arr {
		v, err := p.ctx.Dereference(o)
		if err != nil {
			return false
		}
		switch n := v.(type) {
		case types.Integer:
			comps = append(comps, float64(n.Value()))
		case types.Float:
			comps = append(comps, n.Value())
		default:
			return false
		}
	}

	return chromatic(comps)
}

// chromatic reports whether an RGB or CMYK color has unequal color
// components. Gray and empty arrays are never chromatic.
func chromatic(comps []float64) bool {
	switch len(comps) {
	case 3, 4:
		return comps[0] != comps[1] || comps[1] != comps[2]
	}
	return false
}
