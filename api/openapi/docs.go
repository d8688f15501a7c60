// Package openapi 注册 /swagger 使用的 OpenAPI 2 文档，内容与 handler 上的 swag 注释保持一致。
// 注释改动后可用 go generate 重新生成本文件
package openapi

//go:generate swag init -d ../.. -g cmd/api/main.go -o . --outputTypes go

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/channels/{userId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "频道不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "频道主页",
                "description": "频道信息、订阅数、播放列表和公开视频",
                "tags": [
                    "频道"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "频道（用户）ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "视频排序: popular, latest, oldest",
                        "name": "filter",
                        "in": "query"
                    }
                ]
            }
        },
        "/comments/c/{commentId}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "无权限",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "修改评论",
                "tags": [
                    "评论"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "评论ID",
                        "name": "commentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "评论内容",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CommentRequest"
                        },
                        "required": true
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "删除评论",
                "tags": [
                    "评论"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "评论ID",
                        "name": "commentId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/comments/{videoId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "视频不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "视频评论列表",
                "description": "最新在前，每条附带作者",
                "tags": [
                    "评论"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "每页数量",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "发表评论",
                "tags": [
                    "评论"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "评论内容",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CommentRequest"
                        },
                        "required": true
                    }
                ]
            }
        },
        "/dashboard/stats": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "频道统计",
                "description": "公开视频数、总播放量、订阅数、总点赞数",
                "tags": [
                    "创作者后台"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/videos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "我的全部视频（含未公开）",
                "tags": [
                    "创作者后台"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/likes/toggle/c/{commentId}": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "点赞/取消点赞评论",
                "tags": [
                    "点赞"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "评论ID",
                        "name": "commentId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/likes/toggle/t/{tweetId}": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "点赞/取消点赞动态",
                "tags": [
                    "点赞"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "动态ID",
                        "name": "tweetId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/likes/toggle/v/{videoId}": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "视频不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "点赞/取消点赞视频",
                "tags": [
                    "点赞"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/likes/videos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "我点赞过的视频",
                "description": "likeCount 为当前用户自己对该视频的点赞数",
                "tags": [
                    "点赞"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/playlists": {
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "创建播放列表",
                "tags": [
                    "播放列表"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "名称和描述",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.PlaylistRequest"
                        },
                        "required": true
                    }
                ]
            }
        },
        "/playlists/add/{videoId}/{playlistId}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "无权限",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "播放列表或视频不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "把视频加入播放列表",
                "description": "已在列表中的视频不会重复加入",
                "tags": [
                    "播放列表"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "播放列表ID",
                        "name": "playlistId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/playlists/remove/{videoId}/{playlistId}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "播放列表为空",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "视频不在播放列表中",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "从播放列表移除视频",
                "tags": [
                    "播放列表"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "播放列表ID",
                        "name": "playlistId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/playlists/user/{userId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "用户的播放列表",
                "tags": [
                    "播放列表"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/playlists/{playlistId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "播放列表不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "播放列表详情",
                "tags": [
                    "播放列表"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "播放列表ID",
                        "name": "playlistId",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "修改播放列表",
                "tags": [
                    "播放列表"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "播放列表ID",
                        "name": "playlistId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "名称和描述",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.PlaylistRequest"
                        },
                        "required": true
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "删除播放列表",
                "tags": [
                    "播放列表"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "播放列表ID",
                        "name": "playlistId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/search/videos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "搜索成功",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数无效",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "搜索视频",
                "description": "全文搜索公开视频，Elasticsearch 不可用时降级为数据库查询",
                "tags": [
                    "搜索"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "搜索关键词",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "每页数量",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            }
        },
        "/subscriptions/c/{channelId}": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "频道不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "订阅/取消订阅频道",
                "tags": [
                    "订阅"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "频道ID",
                        "name": "channelId",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "用户订阅的频道",
                "tags": [
                    "订阅"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "订阅者ID",
                        "name": "channelId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/subscriptions/u/{channelId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "频道的订阅者",
                "tags": [
                    "订阅"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "频道ID",
                        "name": "channelId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tweets": {
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "发布动态",
                "tags": [
                    "动态"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "内容",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.TweetRequest"
                        },
                        "required": true
                    }
                ]
            }
        },
        "/tweets/user/{userId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "用户不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "用户的动态",
                "tags": [
                    "动态"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tweets/{tweetId}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "修改动态",
                "tags": [
                    "动态"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "动态ID",
                        "name": "tweetId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "内容",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.TweetRequest"
                        },
                        "required": true
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "删除动态",
                "tags": [
                    "动态"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "动态ID",
                        "name": "tweetId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/users/login": {
            "post": {
                "responses": {
                    "200": {
                        "description": "登录成功",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "用户名或密码错误",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "用户登录",
                "tags": [
                    "用户"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "登录信息",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        },
                        "required": true
                    }
                ]
            }
        },
        "/users/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "未登录",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "获取当前用户信息",
                "tags": [
                    "用户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "修改显示名称",
                "tags": [
                    "用户"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "个人资料",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProfileRequest"
                        },
                        "required": true
                    }
                ]
            }
        },
        "/users/me/avatar": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "替换头像",
                "tags": [
                    "用户"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "file",
                        "description": "头像",
                        "name": "avatar",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/users/me/cover-image": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "替换频道封面",
                "tags": [
                    "用户"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "file",
                        "description": "频道封面",
                        "name": "coverImage",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/users/register": {
            "post": {
                "responses": {
                    "201": {
                        "description": "注册成功",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数无效",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "用户名已存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "用户注册",
                "description": "用户名会转为小写，头像和封面可选",
                "tags": [
                    "用户"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户名",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "显示名称",
                        "name": "fullName",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "密码",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "头像",
                        "name": "avatar",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "频道封面",
                        "name": "coverImage",
                        "in": "formData"
                    }
                ]
            }
        },
        "/videos": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数无效",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "视频列表",
                "description": "只返回公开视频，支持关键词、作者筛选和排序",
                "tags": [
                    "视频"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "每页数量",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "标题或描述关键词",
                        "name": "query",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "排序字段: createdAt, views, title, duration",
                        "name": "sortBy",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asc 或 desc",
                        "name": "sortType",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "作者ID",
                        "name": "userId",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数无效",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "发布视频",
                "description": "上传视频文件和封面，探测时长后创建公开视频",
                "tags": [
                    "视频"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "标题",
                        "name": "title",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "描述",
                        "name": "description",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "视频文件",
                        "name": "videoFile",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "封面",
                        "name": "thumbnail",
                        "in": "formData",
                        "required": true
                    }
                ]
            }
        },
        "/videos/toggle/publish/{videoId}": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "切换视频公开状态",
                "tags": [
                    "视频"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/videos/{videoId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "视频不存在",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "视频详情",
                "description": "播放数 +1；未公开的视频只有作者本人可见",
                "tags": [
                    "视频"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "无权限",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "修改视频",
                "description": "标题和描述必填，可选替换封面",
                "tags": [
                    "视频"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "标题",
                        "name": "title",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "描述",
                        "name": "description",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "新封面",
                        "name": "thumbnail",
                        "in": "formData"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "无权限",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "summary": "删除视频",
                "tags": [
                    "视频"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "视频ID",
                        "name": "videoId",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.CommentRequest": {
            "type": "object"
        },
        "dto.LoginRequest": {
            "type": "object"
        },
        "dto.PlaylistRequest": {
            "type": "object"
        },
        "dto.TweetRequest": {
            "type": "object"
        },
        "dto.UpdateProfileRequest": {
            "type": "object"
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "statusCode": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "statusCode": {
                    "type": "integer"
                },
                "data": {},
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "输入格式: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "127.0.0.1:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "VidTube API",
	Description:      "视频分享平台 API 服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
