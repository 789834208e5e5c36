// Package docs holds the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/login": {
			"post": {
				"description": "Log in with a username and PIN. Replaces any current session.",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Login request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Login successful",
						"schema": {
							"$ref": "#/definitions/services.AuthResponse"
						}
					},
					"400": {
						"description": "Invalid request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "InvalidCredentials",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"description": "End the session and revoke its token",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "Logout successful",
						"schema": {
							"type": "object",
							"properties": {
								"message": {
									"type": "string"
								}
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/dashboard": {
			"get": {
				"description": "Balance, movements and summary of the logged-in account",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Get dashboard",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ViewModel"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/movements/sort": {
			"post": {
				"description": "Switch the movements list between stored and ascending order",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Toggle sort",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ViewModel"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/movements/recent": {
			"get": {
				"description": "Latest movements of the logged-in account, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Get recent movements",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Number of movements to return (default: 10, max: 100)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.LedgerEntry"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/transfers": {
			"post": {
				"description": "Transfer an amount from the logged-in account to another account",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Transfer money",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Transfer request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.TransferRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.TransferResponse"
						}
					},
					"400": {
						"description": "InvalidAmount",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "NotLoggedIn or SessionExpired",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "ReceiverNotFound",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "InsufficientFunds or SelfTransfer",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/transfers/{messageId}/pacs008": {
			"get": {
				"description": "Return the ISO 20022 pacs.008 XML generated for an applied transfer",
				"produces": [
					"application/xml"
				],
				"tags": [
					"iso20022"
				],
				"summary": "Get transfer pacs.008",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Message ID returned by POST /transfers",
						"name": "messageId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "pacs.008 XML",
						"schema": {
							"type": "string"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/transfers/{messageId}/status": {
			"get": {
				"description": "Return an ISO 20022 pacs.002 status report for an exported transfer",
				"produces": [
					"application/xml"
				],
				"tags": [
					"iso20022"
				],
				"summary": "Get transfer status report",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Message ID returned by POST /transfers",
						"name": "messageId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "pacs.002 XML",
						"schema": {
							"type": "string"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/loans": {
			"post": {
				"description": "Approved when any movement exceeds 10% of the floored amount",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Request loan",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Loan request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoanRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ViewModel"
						}
					},
					"400": {
						"description": "InvalidAmount",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "NotLoggedIn or SessionExpired",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"422": {
						"description": "LoanRejected",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/account/close": {
			"post": {
				"description": "Remove the logged-in account after re-entering its credentials",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Close account",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Close request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CloseAccountRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"closed": {
									"type": "boolean"
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "InvalidCredentials, NotLoggedIn or SessionExpired",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/accounts": {
			"get": {
				"description": "Fuzzy search over usernames, excluding the logged-in account",
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Search recipients",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Partial username",
						"name": "q",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum results (default: 10)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/services.Recipient"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/accounts/name-enquiry": {
			"get": {
				"description": "Look up the owner of a username before transferring to it",
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Account name enquiry",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Username",
						"name": "username",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Recipient"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "ReceiverNotFound",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/qr/generate": {
			"post": {
				"description": "Generate a QR code asking for a payment to the logged-in account",
				"produces": [
					"application/json"
				],
				"tags": [
					"QR"
				],
				"summary": "Generate QR Code",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "QR generation request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.QRGenerateRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"success": {
									"type": "boolean"
								},
								"qrCode": {
									"type": "string"
								},
								"qrImage": {
									"type": "string"
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/qr/process": {
			"post": {
				"description": "Decode a scanned QR code into the payment request it carries. Each code can be processed once.",
				"produces": [
					"application/json"
				],
				"tags": [
					"QR"
				],
				"summary": "Process QR Code",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "QR processing request",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.QRProcessRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"success": {
									"type": "boolean"
								},
								"data": {
									"$ref": "#/definitions/models.PaymentRequest"
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.LoginRequest": {
			"type": "object",
			"required": [
				"pin",
				"username"
			],
			"properties": {
				"username": {
					"type": "string",
					"example": "js"
				},
				"pin": {
					"type": "string",
					"example": "1111"
				}
			}
		},
		"models.CloseAccountRequest": {
			"type": "object",
			"required": [
				"pin",
				"username"
			],
			"properties": {
				"username": {
					"type": "string",
					"example": "js"
				},
				"pin": {
					"type": "string",
					"example": "1111"
				}
			}
		},
		"models.TransferRequest": {
			"type": "object",
			"required": [
				"to"
			],
			"properties": {
				"to": {
					"type": "string",
					"example": "jd"
				},
				"amount": {
					"type": "string",
					"example": "250"
				}
			}
		},
		"models.LoanRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "1000"
				}
			}
		},
		"models.QRGenerateRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "50"
				}
			}
		},
		"models.QRProcessRequest": {
			"type": "object",
			"required": [
				"qrData"
			],
			"properties": {
				"qrData": {
					"type": "string"
				}
			}
		},
		"models.PaymentRequest": {
			"type": "object",
			"properties": {
				"to": {
					"type": "string",
					"example": "jd"
				},
				"amount": {
					"type": "string",
					"example": "50"
				},
				"currency": {
					"type": "string",
					"example": "USD"
				},
				"issuedAt": {
					"type": "integer"
				},
				"nonce": {
					"type": "string"
				}
			}
		},
		"models.LedgerEntry": {
			"type": "object",
			"properties": {
				"position": {
					"type": "integer"
				},
				"amount": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"models.MovementRow": {
			"type": "object",
			"properties": {
				"index": {
					"type": "integer",
					"example": 1
				},
				"type": {
					"type": "string",
					"enum": [
						"deposit",
						"withdrawal"
					],
					"example": "deposit"
				},
				"amount": {
					"type": "string",
					"example": "200"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"models.ViewModel": {
			"type": "object",
			"properties": {
				"loggedIn": {
					"type": "boolean"
				},
				"owner": {
					"type": "string",
					"example": "Jonas Schmedtmann"
				},
				"username": {
					"type": "string",
					"example": "js"
				},
				"movements": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.MovementRow"
					}
				},
				"balance": {
					"type": "string",
					"example": "3840"
				},
				"totalIncome": {
					"type": "string"
				},
				"totalExpense": {
					"type": "string"
				},
				"totalInterest": {
					"type": "string"
				},
				"currency": {
					"type": "string",
					"example": "EUR"
				},
				"locale": {
					"type": "string",
					"example": "pt-PT"
				},
				"sorted": {
					"type": "boolean"
				},
				"asOf": {
					"type": "string"
				},
				"expiresAt": {
					"type": "string"
				}
			}
		},
		"services.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"services.AuthResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"dashboard": {
					"$ref": "#/definitions/models.ViewModel"
				}
			}
		},
		"services.TransferResponse": {
			"type": "object",
			"properties": {
				"messageId": {
					"type": "string"
				},
				"loggedIn": {
					"type": "boolean"
				},
				"balance": {
					"type": "string"
				},
				"movements": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.MovementRow"
					}
				}
			}
		},
		"services.Recipient": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string",
					"example": "jd"
				},
				"owner": {
					"type": "string",
					"example": "Jessica Davis"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Bankist Dashboard API",
	Description:      "Account dashboard for the Bankist demo bank: balances, transfers, loans and account closure",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
