package services

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bankist/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/moov-io/iso20022/pkg/common"
	"github.com/moov-io/iso20022/pkg/pacs_v08"
	"github.com/shopspring/decimal"
)

const (
	Pacs008MessageType = "pacs.008.001.08"
	Pacs002MessageType = "pacs.002.001.08"
)

// TransferRecord describes one applied transfer between two accounts.
type TransferRecord struct {
	From       *models.Account
	To         *models.Account
	Amount     decimal.Decimal
	ExecutedAt time.Time
}

type ISO20022Service struct {
	bankBIC  string
	bankName string

	mu       sync.RWMutex
	messages map[string]exportedMessage
}

type exportedMessage struct {
	xml        string
	executedAt time.Time
	endToEndID string
}

// NewISO20022Service returns a service that names bankBIC and bankName as the
// agent on both sides of every transfer.
func NewISO20022Service(bankBIC, bankName string) *ISO20022Service {
	return &ISO20022Service{
		bankBIC:  bankBIC,
		bankName: bankName,
		messages: make(map[string]exportedMessage),
	}
}

// messageID returns a fresh identifier that fits Max35Text.
func messageID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Export builds the pacs.008 for a transfer, keeps its XML for later retrieval
// and returns the message id.
func (iso *ISO20022Service) Export(tr TransferRecord) (string, error) {
	doc, err := iso.CreatePacs008(tr)
	if err != nil {
		return "", err
	}
	xmlData, err := iso.ConvertToXML(doc)
	if err != nil {
		return "", err
	}

	msgID := string(doc.GrpHdr.MsgId)
	iso.mu.Lock()
	iso.messages[msgID] = exportedMessage{
		xml:        xmlData,
		executedAt: tr.ExecutedAt,
		endToEndID: string(doc.CdtTrfTxInf[0].PmtId.EndToEndId),
	}
	iso.mu.Unlock()

	log.Printf("[ISO20022] Exported %s %s: %s -> %s %s %s",
		Pacs008MessageType, msgID, tr.From.Username, tr.To.Username, tr.Amount, tr.From.Currency)
	return msgID, nil
}

// Message returns the stored pacs.008 XML for msgID.
func (iso *ISO20022Service) Message(msgID string) (string, bool) {
	iso.mu.RLock()
	defer iso.mu.RUnlock()
	m, ok := iso.messages[msgID]
	return m.xml, ok
}

// CreatePacs008 creates a pacs.008 FIToFICustomerCreditTransfer message
func (iso *ISO20022Service) CreatePacs008(tr TransferRecord) (*pacs_v08.FIToFICustomerCreditTransferV08, error) {
	if tr.From == nil || tr.To == nil {
		return nil, fmt.Errorf("transfer record needs both accounts")
	}

	msgId := messageID()
	creDtTm := tr.ExecutedAt
	settlementDate := tr.ExecutedAt
	txId := "TX" + msgId[:30]
	endToEnd := fmt.Sprintf("%s-%s-%d", tr.From.Username, tr.To.Username, tr.ExecutedAt.Unix())
	if len(endToEnd) > 35 {
		endToEnd = endToEnd[:35]
	}
	amount := tr.Amount.InexactFloat64()

	doc := &pacs_v08.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs_v08.GroupHeader93{
			MsgId:   common.Max35Text(msgId),
			CreDtTm: common.ISODateTime(creDtTm),
			NbOfTxs: "1",
			TtlIntrBkSttlmAmt: &pacs_v08.ActiveCurrencyAndAmount{
				Ccy:   common.ActiveCurrencyCode(tr.From.Currency),
				Value: amount,
			},
			IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
			SttlmInf: pacs_v08.SettlementInstruction7{
				SttlmMtd: "CLRG", // Clearing
			},
		},
		CdtTrfTxInf: []pacs_v08.CreditTransferTransaction39{
			{
				PmtId: pacs_v08.PaymentIdentification7{
					InstrId:    &[]common.Max35Text{common.Max35Text(txId)}[0],
					EndToEndId: common.Max35Text(endToEnd),
					TxId:       &[]common.Max35Text{common.Max35Text(txId)}[0],
				},
				IntrBkSttlmAmt: pacs_v08.ActiveCurrencyAndAmount{
					Ccy:   common.ActiveCurrencyCode(tr.From.Currency),
					Value: amount,
				},
				IntrBkSttlmDt: (*common.ISODate)(&settlementDate),
				ChrgBr:        "SLEV",
				DbtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						BICFI: &[]common.BICFIDec2014Identifier{common.BICFIDec2014Identifier(iso.bankBIC)}[0],
						Nm:    &[]common.Max140Text{common.Max140Text(iso.bankName)}[0],
					},
				},
				Dbtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(tr.From.Owner)}[0],
				},
				CdtrAgt: pacs_v08.BranchAndFinancialInstitutionIdentification6{
					FinInstnId: pacs_v08.FinancialInstitutionIdentification18{
						ClrSysMmbId: &pacs_v08.ClearingSystemMemberIdentification2{
							MmbId: common.Max35Text(tr.To.Username),
						},
						Nm: &[]common.Max140Text{common.Max140Text(iso.bankName)}[0],
					},
				},
				Cdtr: pacs_v08.PartyIdentification135{
					Nm: &[]common.Max140Text{common.Max140Text(tr.To.Owner)}[0],
				},
			},
		},
	}

	return doc, nil
}

// CreatePacs002 creates a pacs.002 payment status report for an exported
// message. Transfers settle in memory, so the status is always ACSC.
func (iso *ISO20022Service) CreatePacs002(msgID string) (*pacs_v08.FIToFIPaymentStatusReportV08, error) {
	iso.mu.RLock()
	orig, ok := iso.messages[msgID]
	iso.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown message %s", msgID)
	}

	creDtTm := orig.executedAt
	doc := &pacs_v08.FIToFIPaymentStatusReportV08{
		GrpHdr: pacs_v08.GroupHeader53{
			MsgId:   common.Max35Text(messageID()),
			CreDtTm: common.ISODateTime(creDtTm),
		},
		TxInfAndSts: []pacs_v08.PaymentTransaction80{
			{
				OrgnlEndToEndId: &[]common.Max35Text{common.Max35Text(orig.endToEndID)}[0],
				TxSts:           &[]pacs_v08.ExternalPaymentTransactionStatus1Code{pacs_v08.ExternalPaymentTransactionStatus1Code("ACSC")}[0],
			},
		},
	}

	return doc, nil
}

// ConvertToXML converts ISO20022 document to XML string
func (iso *ISO20022Service) ConvertToXML(doc any) (string, error) {
	xmlData, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(xmlData), nil
}

// GetPacs008 returns the pacs.008 exported for a transfer
// @Summary Get transfer pacs.008
// @Description Return the ISO 20022 pacs.008 XML generated for an applied transfer
// @Tags iso20022
// @Produce xml
// @Security BearerAuth
// @Param messageId path string true "Message ID returned by POST /transfers"
// @Success 200 {string} string "pacs.008 XML"
// @Failure 404 {object} ErrorResponse
// @Router /transfers/{messageId}/pacs008 [get]
func (iso *ISO20022Service) GetPacs008(w http.ResponseWriter, r *http.Request) {
	msgID := chi.URLParam(r, "messageId")
	xmlData, ok := iso.Message(msgID)
	if !ok {
		SendErrorResponse(w, "Message not found", http.StatusNotFound, nil)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("X-Message-Type", Pacs008MessageType)
	w.Write([]byte(xmlData))
}

// GetStatusReport returns a pacs.002 status report for a transfer
// @Summary Get transfer status report
// @Description Return an ISO 20022 pacs.002 status report for an exported transfer
// @Tags iso20022
// @Produce xml
// @Security BearerAuth
// @Param messageId path string true "Message ID returned by POST /transfers"
// @Success 200 {string} string "pacs.002 XML"
// @Failure 404 {object} ErrorResponse
// @Router /transfers/{messageId}/status [get]
func (iso *ISO20022Service) GetStatusReport(w http.ResponseWriter, r *http.Request) {
	msgID := chi.URLParam(r, "messageId")
	doc, err := iso.CreatePacs002(msgID)
	if err != nil {
		SendErrorResponse(w, "Message not found", http.StatusNotFound, nil)
		return
	}
	xmlData, err := iso.ConvertToXML(doc)
	if err != nil {
		log.Printf("[ISO20022] Status report for %s failed: %v", msgID, err)
		SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("X-Message-Type", Pacs002MessageType)
	w.Write([]byte(xmlData))
}
