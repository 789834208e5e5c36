package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransfer() TransferRecord {
	return TransferRecord{
		From:       &models.Account{Owner: "Jonas Schmedtmann", Username: "js", Currency: "EUR"},
		To:         &models.Account{Owner: "Jessica Davis", Username: "jd", Currency: "USD"},
		Amount:     decimal.RequireFromString("100.50"),
		ExecutedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestISO20022Service_CreatePacs008(t *testing.T) {
	service := NewISO20022Service("BNKSPTPL", "Bankist")

	t.Run("create valid pacs008", func(t *testing.T) {
		doc, err := service.CreatePacs008(testTransfer())
		require.NoError(t, err)
		require.NotNil(t, doc)

		assert.NotEmpty(t, doc.GrpHdr.MsgId)
		assert.LessOrEqual(t, len(doc.GrpHdr.MsgId), 35)
		assert.Equal(t, "1", string(doc.GrpHdr.NbOfTxs))
		assert.Equal(t, "EUR", string(doc.GrpHdr.TtlIntrBkSttlmAmt.Ccy))
		assert.Equal(t, 100.5, doc.GrpHdr.TtlIntrBkSttlmAmt.Value)
		require.Len(t, doc.CdtTrfTxInf, 1)

		tx := doc.CdtTrfTxInf[0]
		assert.Equal(t, "js-jd-1710495000", string(tx.PmtId.EndToEndId))
		assert.LessOrEqual(t, len(*tx.PmtId.TxId), 35)
		assert.Equal(t, "Jonas Schmedtmann", string(*tx.Dbtr.Nm))
		assert.Equal(t, "Jessica Davis", string(*tx.Cdtr.Nm))
		assert.Equal(t, "BNKSPTPL", string(*tx.DbtrAgt.FinInstnId.BICFI))
		assert.Equal(t, "Bankist", string(*tx.DbtrAgt.FinInstnId.Nm))
		assert.Equal(t, "Bankist", string(*tx.CdtrAgt.FinInstnId.Nm))
	})

	t.Run("missing account", func(t *testing.T) {
		tr := testTransfer()
		tr.To = nil
		_, err := service.CreatePacs008(tr)
		assert.Error(t, err)
	})
}

func TestISO20022Service_Export(t *testing.T) {
	service := NewISO20022Service("BNKSPTPL", "Bankist")

	msgID, err := service.Export(testTransfer())
	require.NoError(t, err)

	xmlString, ok := service.Message(msgID)
	require.True(t, ok)
	assert.Contains(t, xmlString, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	assert.Contains(t, xmlString, msgID)
	assert.Contains(t, xmlString, "EUR")
	assert.Contains(t, xmlString, "Jessica Davis")

	_, ok = service.Message("unknown")
	assert.False(t, ok)
}

func TestISO20022Service_CreatePacs002(t *testing.T) {
	service := NewISO20022Service("BNKSPTPL", "Bankist")
	msgID, err := service.Export(testTransfer())
	require.NoError(t, err)

	doc, err := service.CreatePacs002(msgID)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.GrpHdr.MsgId)
	assert.NotEqual(t, msgID, string(doc.GrpHdr.MsgId))
	require.Len(t, doc.TxInfAndSts, 1)
	assert.Equal(t, "js-jd-1710495000", string(*doc.TxInfAndSts[0].OrgnlEndToEndId))
	assert.Equal(t, "ACSC", string(*doc.TxInfAndSts[0].TxSts))

	_, err = service.CreatePacs002("unknown")
	assert.Error(t, err)
}

func TestISO20022Service_ConvertToXML(t *testing.T) {
	service := NewISO20022Service("BNKSPTPL", "Bankist")

	t.Run("convert invalid struct", func(t *testing.T) {
		invalidStruct := make(chan int)

		xmlString, err := service.ConvertToXML(invalidStruct)
		assert.Error(t, err)
		assert.Empty(t, xmlString)
		assert.Contains(t, err.Error(), "failed to marshal XML")
	})
}

func TestISO20022Service_Handlers(t *testing.T) {
	service := NewISO20022Service("BNKSPTPL", "Bankist")
	msgID, err := service.Export(testTransfer())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/transfers/{messageId}/pacs008", service.GetPacs008)
	r.Get("/transfers/{messageId}/status", service.GetStatusReport)

	t.Run("pacs008", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/transfers/"+msgID+"/pacs008", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
		assert.Equal(t, Pacs008MessageType, w.Header().Get("X-Message-Type"))
		assert.Contains(t, w.Body.String(), msgID)
	})

	t.Run("status report", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/transfers/"+msgID+"/status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, Pacs002MessageType, w.Header().Get("X-Message-Type"))
		assert.Contains(t, w.Body.String(), "ACSC")
	})

	t.Run("unknown message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/transfers/nope/pacs008", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
