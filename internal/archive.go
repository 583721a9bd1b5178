package internal

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenExport opens the XML stream of a health export. A .zip path is
// read in place: the export.xml member is streamed straight out of the
// archive without extracting to disk. Any other path is opened as the
// XML document itself.
func OpenExport(path string) (io.ReadCloser, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return openZipExport(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Op: "open", Err: err}
	}
	return f, nil
}

// openZipExport locates the export.xml member inside the archive
func openZipExport(path string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &InputError{Path: path, Op: "open", Err: err}
	}

	for _, member := range zr.File {
		if !strings.HasSuffix(member.Name, "export.xml") {
			continue
		}
		LogDebug("found %s in archive", member.Name)
		rc, err := member.Open()
		if err != nil {
			zr.Close()
			return nil, &InputError{Path: path, Op: "read", Err: err}
		}
		return &zipEntryReader{rc: rc, zr: zr}, nil
	}

	zr.Close()
	return nil, &InputError{Path: path, Op: "locate",
		Err: errors.New("no export.xml found in archive")}
}

// zipEntryReader ties the member stream's lifetime to the archive handle
type zipEntryReader struct {
	rc io.ReadCloser
	zr *zip.ReadCloser
}

func (z *zipEntryReader) Read(p []byte) (int, error) {
	return z.rc.Read(p)
}

func (z *zipEntryReader) Close() error {
	err := z.rc.Close()
	if cerr := z.zr.Close(); err == nil {
		err = cerr
	}
	return err
}
