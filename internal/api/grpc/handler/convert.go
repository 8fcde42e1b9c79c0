package handler

import (
	"bytes"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/userdirectory/internal/model"
	"github.com/dtroode/userdirectory/internal/view"
)

// Largest integer a protobuf number value carries without losing precision.
const maxExactID = 1 << 53

func userFromStruct(s *structpb.Struct) (model.User, error) {
	if s == nil {
		return model.User{}, fmt.Errorf("%w: empty payload", model.ErrInvalidUser)
	}
	fields := s.GetFields()

	idValue, ok := fields["id"]
	if !ok {
		return model.User{}, fmt.Errorf("%w: id is required", model.ErrInvalidUser)
	}
	num, ok := idValue.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return model.User{}, fmt.Errorf("%w: id must be a number", model.ErrInvalidUser)
	}
	if num.NumberValue != math.Trunc(num.NumberValue) || math.Abs(num.NumberValue) > maxExactID {
		return model.User{}, fmt.Errorf("%w: id must be an integer", model.ErrInvalidUser)
	}

	name, err := stringField(fields, "name")
	if err != nil {
		return model.User{}, err
	}
	email, err := stringField(fields, "email")
	if err != nil {
		return model.User{}, err
	}

	u := model.User{ID: int64(num.NumberValue), Name: name, Email: email}
	if err := u.Validate(); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func stringField(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", model.ErrInvalidUser, key)
	}
	return s.StringValue, nil
}

func usersFromList(l *structpb.ListValue) ([]model.User, error) {
	values := l.GetValues()
	users := make([]model.User, 0, len(values))
	for i, v := range values {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("%w: item #%d is not an object", model.ErrInvalidUser, i)
		}
		u, err := userFromStruct(s.StructValue)
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func listPageToStruct(p view.ListPage) (*structpb.Struct, error) {
	var html bytes.Buffer
	if err := p.WriteHTML(&html); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, map[string]any{
			"id":    it.ID,
			"name":  it.Name,
			"email": it.Email,
			"link":  it.Link,
		})
	}

	s, err := structpb.NewStruct(map[string]any{
		"loading": p.Loading,
		"items":   items,
		"html":    html.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert list page: %w", err)
	}
	return s, nil
}

func detailPageToStruct(p view.DetailPage) (*structpb.Struct, error) {
	var html bytes.Buffer
	if err := p.WriteHTML(&html); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"found":     p.Found,
		"back_link": p.BackLink,
		"html":      html.String(),
	}
	if p.Found {
		fields["id"] = p.ID
		fields["name"] = p.Name
		fields["email"] = p.Email
	} else {
		fields["message"] = p.Message
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to convert detail page: %w", err)
	}
	return s, nil
}
