// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package fileio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.log")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()
	if src.Name != path {
		t.Errorf("Expected name %q, got %q", path, src.Name)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("Expected %q, got %q", "hello\n", string(data))
	}
}

func TestOpenStdin(t *testing.T) {
	src, err := Open("-")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if src.Name != StdinName {
		t.Errorf("Expected name %q, got %q", StdinName, src.Name)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.log"))
	if err == nil {
		t.Errorf("Expected error for missing file, got nil")
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("compressed line\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	f.Close()

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "compressed line\n" {
		t.Errorf("Expected decompressed content, got %q", string(data))
	}
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if _, err := zw.Write([]byte("zstd line\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	f.Close()

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "zstd line\n" {
		t.Errorf("Expected decompressed content, got %q", string(data))
	}
}

func TestOpenCorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	if err := os.WriteFile(path, []byte("not gzip data"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Errorf("Expected error for corrupt gzip file, got nil")
	}
}
