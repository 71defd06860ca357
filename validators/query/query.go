package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 500

	Asc  = "asc"
	Desc = "desc"
)

type QParams struct {
	Pagination
	OrderBy
}

type Pagination struct {
	Page       uint32 `json:"page"`
	PageSize   uint32 `json:"page_size"`
	TotalCount uint32 `json:"total_number"`
	Offset     uint32 `json:"-"`
}

type OrderBy struct {
	Orders [][2]string `json:"order_by"`
}

// Parse reads page, page_size and order_by from the query string.
// order_by may repeat; each value is "field" or "field,asc|desc".
func Parse(ctx *gin.Context, defaultPageSize uint32) (QParams, error) {
	var qp QParams

	page, err := parseUint(ctx.Query("page"))
	if err != nil {
		return qp, errors.Wrap(err, "page is invalid")
	}
	size, err := parseUint(ctx.Query("page_size"))
	if err != nil {
		return qp, errors.Wrap(err, "page_size is invalid")
	}
	if size == 0 {
		size = defaultPageSize
	}
	qp.Pagination = Pagination{Page: page, PageSize: size}
	qp.Pagination.Init()

	for _, o := range ctx.QueryArray("order_by") {
		order, err := parseOrder(o)
		if err != nil {
			return qp, err
		}
		qp.Orders = append(qp.Orders, order)
	}

	return qp, nil
}

func parseUint(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseOrder(s string) ([2]string, error) {
	parts := strings.SplitN(s, ",", 2)
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return [2]string{}, errors.New("order by is invalid")
	}
	dir := Asc
	if len(parts) == 2 {
		dir = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if !funk.ContainsString([]string{Asc, Desc}, dir) {
		return [2]string{}, errors.Errorf("order by direction %q is invalid", dir)
	}
	return [2]string{field, dir}, nil
}

func (p *Pagination) Init() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 || p.PageSize > MaxPageSize {
		p.PageSize = DefaultPageSize
	}
	// pages past the last addressable row select nothing
	offset := uint64(p.Page-1) * uint64(p.PageSize)
	if offset > math.MaxUint32 {
		offset = math.MaxUint32
	}
	p.Offset = uint32(offset)
}
