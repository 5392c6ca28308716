package modules

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLocateFirstMatchWins(t *testing.T) {
	lib := t.TempDir()
	stdlibPkg := filepath.Join(lib, "stdlib")
	writeFile(t, filepath.Join(stdlibPkg, "src", "lists.lx"), "module lists\n")

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "src", "lists.lx"), "module lists\n")

	searchPaths := []string{stdlibPkg, project}

	src, include, err := Locate(searchPaths, "lists")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if src != filepath.Join(stdlibPkg, "src", "lists.lx") {
		t.Errorf("src = %s, want the stdlib copy", src)
	}
	if include != filepath.Join(stdlibPkg, "include") {
		t.Errorf("include = %s, want %s", include, filepath.Join(stdlibPkg, "include"))
	}
}

func TestLocateSkipsPathsWithoutModule(t *testing.T) {
	empty := t.TempDir()
	pkg := t.TempDir()
	writeFile(t, filepath.Join(pkg, "src", "m.lx"), "module m\n")

	src, _, err := Locate([]string{empty, pkg}, "m")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if src != filepath.Join(pkg, "src", "m.lx") {
		t.Errorf("src = %s", src)
	}
}

func TestLocateNotFound(t *testing.T) {
	searchPaths := []string{t.TempDir(), t.TempDir()}

	_, _, err := Locate(searchPaths, "ghost")
	var notFound *ModuleNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want *ModuleNotFoundError", err)
	}
	if notFound.Module != "ghost" {
		t.Errorf("Module = %s", notFound.Module)
	}
	if !reflect.DeepEqual(notFound.SearchPaths, searchPaths) {
		t.Errorf("SearchPaths = %v, want %v", notFound.SearchPaths, searchPaths)
	}
	if !strings.Contains(err.Error(), "ghost") || !strings.Contains(err.Error(), searchPaths[0]) {
		t.Errorf("message should name the module and the paths: %s", err)
	}
}
