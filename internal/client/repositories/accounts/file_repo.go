package accounts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/models"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/filex"
)

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Load reads every non-blank line of the file in order. When reading stops
// early the accounts decoded so far are returned together with the error.
func (r *FileRepository) Load(ctx context.Context) ([]models.Account, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileUnavailable, err)
	}
	defer f.Close()

	var result []models.Account

	// lines have no length limit
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		if !models.IsBlank(line) {
			result = append(result, models.Deserialize(line))
		}

		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", r.path, err)
		}
	}
}

// Save truncates the file and writes all accounts, one per line.
func (r *FileRepository) Save(ctx context.Context, accounts []models.Account) (err error) {
	if err := filex.EnsureParentDir(r.path); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", r.path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, a := range accounts {
		if _, err := w.WriteString(models.Serialize(a) + "\n"); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", r.path, err)
	}

	return nil
}
