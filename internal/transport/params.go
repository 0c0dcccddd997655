package transport

import (
	"fmt"
	"net/url"
)

// valuer is implemented by typed queries such as models.PromptQuery.
type valuer interface {
	Values() url.Values
}

func queryValues(params any) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return p, nil
	case map[string]string:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	case valuer:
		return p.Values(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedParams, params)
	}
}
