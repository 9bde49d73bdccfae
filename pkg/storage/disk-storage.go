package storage

import (
	"compress/gzip"
	"encoding/gob"
	"os"
	"path"

	"github.com/shopmix/catalog/pkg/types"
)

const snapshotFile = "products.gob.gz"

// DiskStorage persists the product snapshot so a restart can serve
// immediately while the first upstream refresh runs.
type DiskStorage struct {
	Path string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{Path: dir}
}

func (d *DiskStorage) fileName(name string) string {
	return path.Join(d.Path, name)
}

// SaveSnapshot writes the products to a temp file and renames it into place
// so readers never see a partial snapshot.
func (d *DiskStorage) SaveSnapshot(products []types.Product) error {
	target := d.fileName(snapshotFile)
	tmp := target + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(file)
	if err := gob.NewEncoder(zw).Encode(products); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := zw.Close(); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}

// LoadSnapshot reads a previously saved snapshot. A missing file is not an
// error, it returns an empty slice.
func (d *DiskStorage) LoadSnapshot() ([]types.Product, error) {
	file, err := os.Open(d.fileName(snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var products []types.Product
	if err := gob.NewDecoder(zr).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}
