package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type IdentifierKind string

const (
	CurseForgeProject IdentifierKind = "CurseForgeProject"
	ModrinthProject   IdentifierKind = "ModrinthProject"
	GitHubRepository  IdentifierKind = "GitHubRepository"

	CurseForgeModpack IdentifierKind = "CurseForgeModpack"
	ModrinthModpack   IdentifierKind = "ModrinthModpack"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

// ModIdentifier says where a mod comes from. Only the fields for Kind are set.
type ModIdentifier struct {
	Kind         IdentifierKind
	CurseForgeID int32
	ModrinthID   string
	Owner        string
	Repo         string
}

func (id ModIdentifier) String() string {
	switch id.Kind {
	case CurseForgeProject:
		return "curseforge:" + strconv.Itoa(int(id.CurseForgeID))
	case ModrinthProject:
		return "modrinth:" + id.ModrinthID
	case GitHubRepository:
		return "github:" + id.Owner + "/" + id.Repo
	}
	return string(id.Kind)
}

// ParseModIdentifier reads the text form used on the command line:
// curseforge:<number>, modrinth:<id> or github:<owner>/<repo>.
func ParseModIdentifier(s string) (ModIdentifier, error) {
	platform, value, ok := strings.Cut(s, ":")
	if !ok || value == "" {
		return ModIdentifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}

	switch strings.ToLower(platform) {
	case "curseforge", "cf":
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return ModIdentifier{}, fmt.Errorf("%w: curseforge project id must be a number", ErrInvalidIdentifier)
		}
		return ModIdentifier{Kind: CurseForgeProject, CurseForgeID: int32(n)}, nil
	case "modrinth", "mr":
		return ModIdentifier{Kind: ModrinthProject, ModrinthID: value}, nil
	case "github", "gh":
		owner, repo, ok := strings.Cut(value, "/")
		if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
			return ModIdentifier{}, fmt.Errorf("%w: github repository must be owner/repo", ErrInvalidIdentifier)
		}
		return ModIdentifier{Kind: GitHubRepository, Owner: owner, Repo: repo}, nil
	}
	return ModIdentifier{}, fmt.Errorf("%w: unknown platform %q", ErrInvalidIdentifier, platform)
}

func (id ModIdentifier) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case CurseForgeProject:
		return marshalTagged(string(id.Kind), id.CurseForgeID)
	case ModrinthProject:
		return marshalTagged(string(id.Kind), id.ModrinthID)
	case GitHubRepository:
		return marshalTagged(string(id.Kind), [2]string{id.Owner, id.Repo})
	}
	return nil, fmt.Errorf("%w: unknown mod identifier kind %q", ErrInvalidIdentifier, id.Kind)
}

func (id *ModIdentifier) UnmarshalJSON(data []byte) error {
	tag, raw, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	kind := IdentifierKind(tag)
	out := ModIdentifier{Kind: kind}
	switch kind {
	case CurseForgeProject:
		err = json.Unmarshal(raw, &out.CurseForgeID)
	case ModrinthProject:
		err = json.Unmarshal(raw, &out.ModrinthID)
	case GitHubRepository:
		var pair []string
		if err = json.Unmarshal(raw, &pair); err != nil {
			return err
		}
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			return fmt.Errorf("%w: github repository must be [owner, repo]", ErrInvalidIdentifier)
		}
		out.Owner, out.Repo = pair[0], pair[1]
	default:
		return fmt.Errorf("%w: unknown mod identifier kind %q", ErrInvalidIdentifier, kind)
	}
	if err != nil {
		return err
	}
	*id = out
	return nil
}

type ModpackIdentifier struct {
	Kind         IdentifierKind
	CurseForgeID int32
	ModrinthID   string
}

func (id ModpackIdentifier) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case CurseForgeModpack:
		return marshalTagged(string(id.Kind), id.CurseForgeID)
	case ModrinthModpack:
		return marshalTagged(string(id.Kind), id.ModrinthID)
	}
	return nil, fmt.Errorf("%w: unknown modpack identifier kind %q", ErrInvalidIdentifier, id.Kind)
}

func (id *ModpackIdentifier) UnmarshalJSON(data []byte) error {
	tag, raw, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	kind := IdentifierKind(tag)
	out := ModpackIdentifier{Kind: kind}
	switch kind {
	case CurseForgeModpack:
		err = json.Unmarshal(raw, &out.CurseForgeID)
	case ModrinthModpack:
		err = json.Unmarshal(raw, &out.ModrinthID)
	default:
		return fmt.Errorf("%w: unknown modpack identifier kind %q", ErrInvalidIdentifier, kind)
	}
	if err != nil {
		return err
	}
	*id = out
	return nil
}

// marshalTagged writes the single-key object form {"<tag>": value}.
func marshalTagged(tag string, value interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{tag: value})
}

func unmarshalTagged(data []byte) (string, json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("expected an object with exactly one key, got %d", len(obj))
	}
	for tag, raw := range obj {
		return tag, raw, nil
	}
	return "", nil, nil
}
