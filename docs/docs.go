// Package docs 维护 /swagger 页面加载的接口文档定义，随路由手工同步
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
                "tags": ["Auth"],
                "summary": "员工登录",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "登出",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "员工自助注册",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/handover": {
            "get": {
                "tags": ["Handover"],
                "summary": "获取交接事项列表",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Handover"],
                "summary": "创建交接事项",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/handover/{id}": {
            "delete": {
                "tags": ["Handover"],
                "summary": "删除交接事项",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/records": {
            "get": {
                "tags": ["Record"],
                "summary": "获取护理记录列表",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Record"],
                "summary": "创建护理记录",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/residents": {
            "get": {
                "tags": ["Resident"],
                "summary": "获取入住者列表",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Resident"],
                "summary": "创建入住者",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/residents/{id}": {
            "get": {
                "tags": ["Resident"],
                "summary": "获取入住者详情",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Resident"],
                "summary": "更新入住者",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Resident"],
                "summary": "删除入住者",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/staff": {
            "get": {
                "tags": ["Staff"],
                "summary": "获取员工列表",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Staff"],
                "summary": "添加员工",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/staff/qr": {
            "post": {
                "tags": ["Staff"],
                "summary": "签发QR登录令牌",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/staff/{id}": {
            "get": {
                "tags": ["Staff"],
                "summary": "获取员工详情",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Staff"],
                "summary": "更新员工",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Staff"],
                "summary": "删除员工",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/staff/{id}/qr": {
            "post": {
                "tags": ["Staff"],
                "summary": "重新签发QR登录令牌",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/login/{token}": {
            "get": {
                "tags": ["Auth"],
                "summary": "QR令牌登录",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CareLog HTTP Service API",
	Description:      "Care facility daily logging service with resident records, handover board and QR login",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
