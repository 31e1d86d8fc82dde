package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxBodyBytes ограничивает размер тела запроса.
const maxBodyBytes = 1 << 20

// fields — поля тела запроса. Проверяется только наличие значения,
// тип и длина — забота сервиса.
type fields map[string]any

// readFields разбирает JSON или application/x-www-form-urlencoded.
// Пустое тело означает отсутствие всех полей; битый JSON — ошибка.
func readFields(w http.ResponseWriter, r *http.Request) (fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		// ParseForm не читает тело DELETE, поэтому разбираем сами
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return nil, err
		}
		f := fields{}
		for k, v := range values {
			if len(v) > 0 {
				f[k] = v[0]
			}
		}
		return f, nil
	}

	f := fields{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return fields{}, nil
		}
		return nil, err
	}
	return f, nil
}

// str возвращает поле как строку. null, объекты и массивы считаются отсутствием.
func (f fields) str(name string) (string, bool) {
	switch v := f[name].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// id возвращает целочисленный идентификатор из числа или числовой строки.
func (f fields) id(name string) (int64, bool) {
	switch v := f[name].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		return parseID(v)
	default:
		return 0, false
	}
}

func parseID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}
