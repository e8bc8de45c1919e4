package asset

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/png" // register PNG decoder
)

// Load reads a creature model from a single PNG file or a directory tree.
//
// Layout conventions, mirrored by parseFilename:
//
//	pet.png                  single image, becomes part "body"
//	legs_01.png legs_02.png  animation frames of part "legs"
//	head_happy.png           variant "happy" of part "head"
//	legs_blue_01.png         frame 1 of variant "blue" of part "legs"
//	head/angry.png           one directory level names the part
//	legs/blue/01.png         a second level names the variant
//
// Files are visited in sorted path order so frame sequences are
// deterministic. Undecodable images reject the whole load with
// ErrInvalidAsset; rejection happens here, before the model ever
// reaches the tick loop.
func Load(path string) (*Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("asset path %q: %w", path, err)
	}

	if !info.IsDir() {
		model := NewModel(stem(filepath.Base(path)))
		fr, err := loadFrame(path)
		if err != nil {
			return nil, err
		}
		model.AddFrame("body", DefaultVariant, fr)
		return model, nil
	}

	model := NewModel(filepath.Base(path))
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".png") {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		part, variant := classify(rel)
		fr, err := loadFrame(p)
		if err != nil {
			return err
		}
		model.AddFrame(part, variant, fr)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if model.PartCount() == 0 {
		return nil, fmt.Errorf("no PNG images under %q: %w", path, ErrInvalidAsset)
	}
	return model, nil
}

// AddParts loads additional parts from path and merges them into model.
// The merge is additive: existing parts, variants, and frame sequences
// are never removed or reordered.
func AddParts(model *Model, path string) error {
	extra, err := Load(path)
	if err != nil {
		return err
	}
	model.Merge(extra)
	return nil
}

// classify maps a relative file path to (part, variant) per the layout
// conventions. An empty variant means the default variant.
func classify(rel string) (part, variant string) {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	switch len(parts) {
	case 1:
		base, v, _ := parseFilename(stem(parts[0]))
		return base, v
	case 2:
		return parts[0], variantStem(stem(parts[1]))
	default:
		// Deeper nesting: directory levels win over filename hints
		return parts[0], parts[1]
	}
}

// variantStem extracts a variant name from a file stem inside a part
// directory: a trailing _NN frame suffix is dropped, and a purely
// numeric stem means a frame of the default variant.
func variantStem(s string) string {
	if _, err := strconv.Atoi(s); err == nil {
		return ""
	}
	if i := strings.LastIndex(s, "_"); i >= 0 {
		if _, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i]
		}
	}
	return s
}

// parseFilename splits a file stem into base name, variant, and frame
// number. A trailing _NN is the frame number; anything after the first
// remaining underscore is the variant.
func parseFilename(s string) (base, variant string, frame int) {
	frame = -1
	if i := strings.LastIndex(s, "_"); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			frame = n
			s = s[:i]
		}
	}
	base, variant, _ = strings.Cut(s, "_")
	return base, variant, frame
}

// loadFrame decodes one PNG file into a straight-alpha frame.
func loadFrame(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %v: %w", path, err, ErrInvalidAsset)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("empty image %q: %w", path, ErrInvalidAsset)
	}
	return FrameFromImage(img), nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
