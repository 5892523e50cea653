package sources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvinuesa/applewarden/internal/model"
)

const appleHeader = "Title,URL,Username,Password,Notes,OTPAuth\n"

// writeCSV writes content to name inside a fresh temp directory.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, s Source, path string) ([]model.Row, error) {
	t.Helper()
	if err := s.Open(path); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()
	return s.Read()
}

func TestAppleSource_Interface(t *testing.T) {
	s := NewAppleSource()

	if s.Name() != "apple" {
		t.Errorf("Name() = %v, want apple", s.Name())
	}
	if s.Description() == "" {
		t.Error("Description() should not be empty")
	}
	exts := s.SupportedExtensions()
	if len(exts) != 1 || exts[0] != ".csv" {
		t.Errorf("SupportedExtensions() = %v, want [.csv]", exts)
	}
}

func TestAppleSource_Detect(t *testing.T) {
	s := NewAppleSource()

	t.Run("Non-existent path", func(t *testing.T) {
		_, err := s.Detect("/nonexistent/passwords.csv")
		if !IsNotFound(err) {
			t.Errorf("Detect() error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		confidence, err := s.Detect(t.TempDir())
		if err != nil || confidence != 0 {
			t.Errorf("Detect(dir) = %d, %v; want 0, nil", confidence, err)
		}
	})

	t.Run("Wrong extension", func(t *testing.T) {
		path := writeCSV(t, "passwords.txt", appleHeader)
		confidence, err := s.Detect(path)
		if err != nil || confidence != 0 {
			t.Errorf("Detect(.txt) = %d, %v; want 0, nil", confidence, err)
		}
	})

	t.Run("Apple header", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", appleHeader)
		confidence, err := s.Detect(path)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if confidence != 100 {
			t.Errorf("Detect() = %d, want 100", confidence)
		}
	})

	t.Run("Apple header with BOM", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", "\ufeff"+appleHeader)
		confidence, _ := s.Detect(path)
		if confidence != 100 {
			t.Errorf("Detect() = %d, want 100", confidence)
		}
	})

	t.Run("Chrome header scores lower", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", "name,url,username,password,note\n")
		confidence, _ := s.Detect(path)
		if confidence >= 100 || confidence == 0 {
			t.Errorf("Detect() = %d, want partial confidence", confidence)
		}
	})

	t.Run("Header missing columns outscores chrome", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", "Title,URL,Username,Password\nMy Bank,https://bank.example/,alice,pw1\n")
		apple, _ := s.Detect(path)
		chrome, _ := NewChromeSource().Detect(path)
		if apple <= chrome {
			t.Errorf("apple confidence %d should exceed chrome %d", apple, chrome)
		}
	})

	t.Run("Unrelated header", func(t *testing.T) {
		path := writeCSV(t, "data.csv", "a,b,c\n1,2,3\n")
		confidence, _ := s.Detect(path)
		if confidence != 0 {
			t.Errorf("Detect() = %d, want 0", confidence)
		}
	})
}

func TestAppleSource_Open(t *testing.T) {
	t.Run("Non-existent file", func(t *testing.T) {
		err := NewAppleSource().Open("/nonexistent.csv")
		var notFound *ErrFileNotFound
		if !errors.As(err, &notFound) {
			t.Errorf("Open() error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		err := NewAppleSource().Open(t.TempDir())
		if !IsFormatError(err) {
			t.Errorf("Open(dir) error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("Double open", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", appleHeader)
		s := NewAppleSource()
		if err := s.Open(path); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		if err := s.Open(path); !errors.Is(err, ErrAlreadyOpen) {
			t.Errorf("Double Open() error = %v, want ErrAlreadyOpen", err)
		}
	})
}

func TestAppleSource_Read(t *testing.T) {
	t.Run("Read before Open", func(t *testing.T) {
		_, err := NewAppleSource().Read()
		if !errors.Is(err, ErrNotOpen) {
			t.Errorf("Read() error = %v, want ErrNotOpen", err)
		}
	})

	t.Run("All columns", func(t *testing.T) {
		content := appleHeader +
			"Example,https://example.com,alice,s3cret,\"line1\nline2\",otpauth://totp/Example?secret=JBSWY3DPEHPK3PXP\n" +
			"Other,https://other.com,bob,hunter2,,\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("Read() returned %d rows, want 2", len(rows))
		}

		want := model.Row{
			Title:    "Example",
			URL:      "https://example.com",
			Username: "alice",
			Password: "s3cret",
			Notes:    "line1\nline2",
			OTPAuth:  "otpauth://totp/Example?secret=JBSWY3DPEHPK3PXP",
		}
		if rows[0] != want {
			t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
		}
		if rows[1].Notes != "" || rows[1].OTPAuth != "" {
			t.Errorf("rows[1] should have empty notes and otp: %+v", rows[1])
		}
	})

	t.Run("Values are not trimmed", func(t *testing.T) {
		content := appleHeader + "Site,https://x.com, user , pass ,,\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if rows[0].Username != " user " || rows[0].Password != " pass " {
			t.Errorf("values should be kept verbatim: %+v", rows[0])
		}
	})

	t.Run("Column order and case", func(t *testing.T) {
		content := "otpauth,PASSWORD,username,Extra,title\n" +
			"otp,p,u,ignored,T\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		want := model.Row{Title: "T", Username: "u", Password: "p", OTPAuth: "otp"}
		if rows[0] != want {
			t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
		}
	})

	t.Run("Missing columns read as empty", func(t *testing.T) {
		content := "Title,Username\nSite,u\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		want := model.Row{Title: "Site", Username: "u"}
		if rows[0] != want {
			t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
		}
	})

	t.Run("BOM is skipped", func(t *testing.T) {
		content := "\ufeff" + appleHeader + "Site,https://x.com,u,p,,\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if rows[0].Title != "Site" {
			t.Errorf("Title = %q, want Site (BOM should not leak into header)", rows[0].Title)
		}
	})

	t.Run("Empty file", func(t *testing.T) {
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", ""))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("Read() returned %d rows, want 0", len(rows))
		}
	})

	t.Run("Inconsistent column count", func(t *testing.T) {
		content := appleHeader +
			"Site,https://x.com,u,p,,\n" +
			"Broken,https://y.com,u\n"
		rows, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if err == nil {
			t.Fatal("Read() should fail on inconsistent column count")
		}
		if rows != nil {
			t.Errorf("Read() returned rows on failure: %v", rows)
		}

		var formatErr *ErrInvalidFormat
		if !errors.As(err, &formatErr) {
			t.Fatalf("Read() error = %T, want *ErrInvalidFormat", err)
		}
		if formatErr.Line != 3 {
			t.Errorf("Line = %d, want 3", formatErr.Line)
		}
		if formatErr.Source != "apple" {
			t.Errorf("Source = %q, want apple", formatErr.Source)
		}
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		content := appleHeader + "Site,https://x.com,u,p\xff,,\n"
		_, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if !IsFormatError(err) {
			t.Errorf("Read() error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("Bare quote", func(t *testing.T) {
		content := appleHeader + "Si\"te,https://x.com,u,p,,\n"
		_, err := readAll(t, NewAppleSource(), writeCSV(t, "passwords.csv", content))
		if !IsInputError(err) {
			t.Errorf("Read() error = %v, want input error", err)
		}
	})

	t.Run("Read is cached", func(t *testing.T) {
		path := writeCSV(t, "passwords.csv", appleHeader+"Site,https://x.com,u,p,,\n")
		s := NewAppleSource()
		if err := s.Open(path); err != nil {
			t.Fatal(err)
		}
		defer s.Close()

		first, err := s.Read()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		second, err := s.Read()
		if err != nil {
			t.Fatalf("second Read() error = %v", err)
		}
		if len(first) != len(second) {
			t.Error("second Read() should return cached rows")
		}
	})
}
