package domain

import "time"

// StampFormat is the layout exiftool expects for the Alldates value. The
// time colons are replaced with dashes, the date keeps its own dashes.
const StampFormat = "2006-01-02 15-04-05"

// StampItem describes one file whose EXIF dates will be rewritten from its
// filesystem modification time.
type StampItem struct {
	Path    string
	Name    string
	ModTime time.Time
	Stamp   string
}

type StampPlan struct {
	Dir          string
	Items        []StampItem
	UpToDateSkip int
	Warnings     []string
}

func NewStampItem(path, name string, modTime time.Time) StampItem {
	return StampItem{
		Path:    path,
		Name:    name,
		ModTime: modTime,
		Stamp:   FormatStamp(modTime),
	}
}

func FormatStamp(t time.Time) string {
	return t.Format(StampFormat)
}
