package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/okorolenko/chirp/internal/model"
)

// render writes v to w in the requested format. JSON emits the value
// as-is; text is a compact human layout. Text mode never echoes
// passwords.
func render(w io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	switch x := v.(type) {
	case string:
		_, err := fmt.Fprintln(w, x)
		return err
	case []string:
		for _, s := range x {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case *model.Tweet:
		return renderTweet(w, *x)
	case []model.Tweet:
		for _, t := range x {
			if err := renderTweet(w, t); err != nil {
				return err
			}
		}
		return nil
	case *model.Profile:
		return renderProfile(w, *x)
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

func renderTweet(w io.Writer, t model.Tweet) error {
	if _, err := fmt.Fprintf(w, "#%d @%s %s\n  %s\n",
		t.ID, t.Author, t.CreatedAt.Format(time.RFC3339), t.Content); err != nil {
		return err
	}
	for _, c := range t.Comments {
		if _, err := fmt.Fprintf(w, "  - @%s: %s\n", c.Username, c.Content); err != nil {
			return err
		}
	}
	return nil
}

func renderProfile(w io.Writer, p model.Profile) error {
	if _, err := fmt.Fprintf(w, "@%s\n", p.Username); err != nil {
		return err
	}
	if p.Bio != "" {
		if _, err := fmt.Fprintf(w, "  bio: %s\n", p.Bio); err != nil {
			return err
		}
	}
	if p.ProfilePictureURL != "" {
		if _, err := fmt.Fprintf(w, "  picture: %s\n", p.ProfilePictureURL); err != nil {
			return err
		}
	}
	return nil
}
