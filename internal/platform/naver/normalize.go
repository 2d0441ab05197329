package naver

import (
	"time"

	candleentity "market_backend/internal/feature/candles/domain/entity"
	indexentity "market_backend/internal/feature/index/domain/entity"
	"market_backend/internal/shared/coerce"
)

// Upstream column labels (Korean). The volume column is optional.
const (
	colDate   = "날짜"
	colOpen   = "시가"
	colHigh   = "고가"
	colLow    = "저가"
	colClose  = "종가"
	colVolume = "거래량"
)

// upstreamDateLayout is the compact 8-digit date format of the date column.
const upstreamDateLayout = "20060102"

// normalizeDate converts an upstream date cell ("20220103") into the
// canonical "2006-01-02" form. Non-string or unparsable cells fail.
func normalizeDate(cell any) (string, bool) {
	s, ok := cell.(string)
	if !ok {
		return "", false
	}
	d, err := time.Parse(upstreamDateLayout, s)
	if err != nil {
		return "", false
	}
	return d.Format("2006-01-02"), true
}

// candlesFromTable resolves the OHLCV columns by label and converts each row
// into a Candle. Code and Timeframe are left unset; the caller assigns them.
//
// A row whose date or any price cell fails coercion is dropped, never fatal:
// the result just gets shorter. Row order (chronological ascending upstream)
// is preserved, so tail truncation stays with the caller.
func candlesFromTable(t *Table) ([]candleentity.Candle, error) {
	iDate, err := t.Require(colDate)
	if err != nil {
		return nil, err
	}
	iOpen, err := t.Require(colOpen)
	if err != nil {
		return nil, err
	}
	iHigh, err := t.Require(colHigh)
	if err != nil {
		return nil, err
	}
	iLow, err := t.Require(colLow)
	if err != nil {
		return nil, err
	}
	iClose, err := t.Require(colClose)
	if err != nil {
		return nil, err
	}
	iVol, hasVol := t.Column(colVolume)

	out := make([]candleentity.Candle, 0, len(t.Rows))
	for _, row := range t.Rows {
		date, ok := normalizeDate(row[iDate])
		if !ok {
			continue
		}
		o, err := coerce.Float(row[iOpen])
		if err != nil {
			continue
		}
		h, err := coerce.Float(row[iHigh])
		if err != nil {
			continue
		}
		l, err := coerce.Float(row[iLow])
		if err != nil {
			continue
		}
		c, err := coerce.Float(row[iClose])
		if err != nil {
			continue
		}

		candle := candleentity.Candle{
			T:     date,
			Open:  o,
			High:  h,
			Low:   l,
			Close: c,
		}
		if hasVol {
			v, err := coerce.Float(row[iVol])
			if err != nil {
				continue
			}
			candle.Volume = &v
		}
		out = append(out, candle)
	}
	return out, nil
}

// pointsFromTable reduces a table to (date, close) points for index series.
func pointsFromTable(t *Table) ([]indexentity.DailyPoint, error) {
	iDate, err := t.Require(colDate)
	if err != nil {
		return nil, err
	}
	iClose, err := t.Require(colClose)
	if err != nil {
		return nil, err
	}

	out := make([]indexentity.DailyPoint, 0, len(t.Rows))
	for _, row := range t.Rows {
		date, ok := normalizeDate(row[iDate])
		if !ok {
			continue
		}
		v, err := coerce.Float(row[iClose])
		if err != nil {
			continue
		}
		out = append(out, indexentity.DailyPoint{T: date, V: v})
	}
	return out, nil
}
