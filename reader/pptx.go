package reader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hazyhaar/officepipe/model"
)

var (
	slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	notesPartRe = regexp.MustCompile(`notesSlides/(notesSlide\d+\.xml)$`)
)

// extractPptx parses a .pptx file: slides in native order with 1-based
// contiguous numbering, truncated to maxSlides with a non-fatal warning.
func extractPptx(path string, maxSlides int) (*model.DeckContent, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, corrupted(path, err)
	}
	defer r.Close()

	parts, err := collectSlideParts(&r.Reader)
	if err != nil {
		return nil, corrupted(path, err)
	}

	total := len(parts)
	process := parts
	warning := ""
	if total > maxSlides {
		process = parts[:maxSlides]
		warning = fmt.Sprintf("file contains %d slides; only the first %d were processed", total, maxSlides)
	}

	slides := make([]model.Slide, 0, len(process))
	for i, part := range process {
		slide, err := extractSlide(&r.Reader, part)
		if err != nil {
			return nil, corrupted(path, err)
		}
		slide.SlideNumber = i + 1
		slides = append(slides, slide)
	}

	return &model.DeckContent{Slides: slides, Warning: warning}, nil
}

type slidePart struct {
	number int
	file   *zip.File
}

func collectSlideParts(r *zip.Reader) ([]slidePart, error) {
	var parts []slidePart
	for _, f := range r.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("bad slide part name %q", f.Name)
		}
		parts = append(parts, slidePart{number: n, file: f})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no slides found in archive")
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].number < parts[j].number })
	return parts, nil
}

// PresentationML decoding structures. Unqualified names match the local
// element names regardless of namespace prefix.

type pptxSlideXML struct {
	CSld struct {
		SpTree pptxSpTree `xml:"spTree"`
	} `xml:"cSld"`
}

type pptxSpTree struct {
	Shapes []pptxShape        `xml:"sp"`
	Frames []pptxGraphicFrame `xml:"graphicFrame"`
}

type pptxShape struct {
	NvSpPr struct {
		NvPr struct {
			Ph *struct {
				Type string `xml:"type,attr"`
			} `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	TxBody *pptxTxBody `xml:"txBody"`
}

type pptxTxBody struct {
	Paragraphs []pptxParagraph `xml:"p"`
}

type pptxParagraph struct {
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

type pptxGraphicFrame struct {
	Graphic struct {
		GraphicData struct {
			Tbl *pptxTable `xml:"tbl"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

type pptxTable struct {
	Grid struct {
		Cols []struct{} `xml:"gridCol"`
	} `xml:"tblGrid"`
	Rows []struct {
		Cells []struct {
			TxBody pptxTxBody `xml:"txBody"`
		} `xml:"tc"`
	} `xml:"tr"`
}

func extractSlide(r *zip.Reader, part slidePart) (model.Slide, error) {
	var slide model.Slide
	sld, err := decodeSlideXML(part.file)
	if err != nil {
		return slide, err
	}

	var bodyParts []string
	for _, sp := range sld.CSld.SpTree.Shapes {
		text := strings.TrimSpace(shapeText(sp.TxBody))
		if isTitlePlaceholder(sp) {
			if slide.Title == "" {
				slide.Title = text
			}
			continue
		}
		if text != "" {
			bodyParts = append(bodyParts, text)
		}
	}
	slide.Content = strings.Join(bodyParts, "\n\n")

	slide.Tables = []model.Table{}
	for _, frame := range sld.CSld.SpTree.Frames {
		if frame.Graphic.GraphicData.Tbl == nil {
			continue
		}
		slide.Tables = append(slide.Tables, tableFromPptx(frame.Graphic.GraphicData.Tbl))
	}

	notes, err := extractNotes(r, part)
	if err != nil {
		return slide, err
	}
	slide.Notes = notes

	return slide, nil
}

func decodeSlideXML(f *zip.File) (*pptxSlideXML, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var sld pptxSlideXML
	if err := xml.NewDecoder(rc).Decode(&sld); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Name, err)
	}
	return &sld, nil
}

func isTitlePlaceholder(sp pptxShape) bool {
	ph := sp.NvSpPr.NvPr.Ph
	return ph != nil && (ph.Type == "title" || ph.Type == "ctrTitle")
}

// shapeText joins a text body's paragraphs with newlines, runs verbatim.
func shapeText(body *pptxTxBody) string {
	if body == nil {
		return ""
	}
	lines := make([]string, 0, len(body.Paragraphs))
	for _, p := range body.Paragraphs {
		var sb strings.Builder
		for _, run := range p.Runs {
			sb.WriteString(run.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// tableFromPptx reads exactly the grid's column count of cells per row,
// each cell trimmed independently.
func tableFromPptx(tbl *pptxTable) model.Table {
	columns := len(tbl.Grid.Cols)
	if columns == 0 && len(tbl.Rows) > 0 {
		columns = len(tbl.Rows[0].Cells)
	}
	data := make([][]string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		cells := make([]string, columns)
		for c := 0; c < columns && c < len(row.Cells); c++ {
			cells[c] = strings.TrimSpace(shapeText(&row.Cells[c].TxBody))
		}
		data[i] = cells
	}
	return model.Table{Rows: len(tbl.Rows), Columns: columns, Data: data}
}

// extractNotes resolves the slide's notes part through its relationships
// file; slides without notes yield an empty string.
func extractNotes(r *zip.Reader, part slidePart) (string, error) {
	relsName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", part.number)
	rc, err := openZipPart(r, relsName)
	if err != nil {
		return "", nil
	}
	defer rc.Close()

	var rels struct {
		Relationships []struct {
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
		return "", fmt.Errorf("decode %s: %w", relsName, err)
	}

	for _, rel := range rels.Relationships {
		m := notesPartRe.FindStringSubmatch(rel.Target)
		if m == nil {
			continue
		}
		nrc, err := openZipPart(r, "ppt/notesSlides/"+m[1])
		if err != nil {
			return "", nil
		}
		defer nrc.Close()
		var notes pptxSlideXML
		if err := xml.NewDecoder(nrc).Decode(&notes); err != nil {
			return "", fmt.Errorf("decode notes for slide %d: %w", part.number, err)
		}
		for _, sp := range notes.CSld.SpTree.Shapes {
			ph := sp.NvSpPr.NvPr.Ph
			if ph != nil && ph.Type == "body" {
				return strings.TrimSpace(shapeText(sp.TxBody)), nil
			}
		}
	}
	return "", nil
}
