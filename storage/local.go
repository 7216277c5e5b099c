package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local เก็บไฟล์อัปโหลดลงดิสก์ใต้ Root แล้วคืน path แบบ relative
// (เช่น "materials/3f1c...pdf") สำหรับเก็บลงตาราง
type Local struct {
	Root string
}

func NewLocal(root string) *Local {
	return &Local{Root: root}
}

// SaveUpload เซฟไฟล์จากฟอร์มไว้ใต้ dir ตั้งชื่อใหม่ด้วย uuid กันชนกัน
func (s *Local) SaveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := filepath.Join(dir, uuid.New().String()+filepath.Ext(fh.Filename))
	full := filepath.Join(s.Root, key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filepath.ToSlash(key), nil
}

// Remove ลบไฟล์ตาม path ที่เคยคืนจาก SaveUpload (ไม่มีไฟล์ = ไม่ถือเป็น error)
func (s *Local) Remove(key string) error {
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
