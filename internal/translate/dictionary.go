package translate

import "strings"

// dictionary covers the short UI phrases every admin panel repeats, so a
// provider outage still yields usable output for the common cases.
var dictionary = map[string]string{
	"确定":   "OK",
	"确认":   "Confirm",
	"取消":   "Cancel",
	"保存":   "Save",
	"删除":   "Delete",
	"编辑":   "Edit",
	"新增":   "Add",
	"修改":   "Modify",
	"查询":   "Query",
	"搜索":   "Search",
	"提交":   "Submit",
	"重置":   "Reset",
	"刷新":   "Refresh",
	"返回":   "Back",
	"关闭":   "Close",
	"登录":   "Log in",
	"退出":   "Log out",
	"注册":   "Sign up",
	"设置":   "Settings",
	"帮助":   "Help",
	"详情":   "Details",
	"复制":   "Copy",
	"导出":   "Export",
	"导入":   "Import",
	"上传":   "Upload",
	"下载":   "Download",
	"全选":   "Select all",
	"清空":   "Clear",
	"预览":   "Preview",
	"打印":   "Print",
	"是":    "Yes",
	"否":    "No",
	"成功":   "Success",
	"失败":   "Failed",
	"错误":   "Error",
	"警告":   "Warning",
	"提示":   "Tip",
	"通知":   "Notice",
	"加载中":  "Loading",
	"请稍候":  "Please wait",
	"暂无数据": "No data",
	"操作成功": "Operation succeeded",
	"操作失败": "Operation failed",
	"保存成功": "Saved",
	"保存失败": "Save failed",
	"删除成功": "Deleted",
	"删除失败": "Delete failed",
	"上一步":  "Previous",
	"下一步":  "Next",
	"上一页":  "Previous page",
	"下一页":  "Next page",
	"首页":   "Home",
	"用户名":  "Username",
	"密码":   "Password",
	"邮箱":   "Email",
	"手机号":  "Phone number",
	"姓名":   "Name",
	"名称":   "Name",
	"状态":   "Status",
	"类型":   "Type",
	"备注":   "Remark",
	"操作":   "Actions",
	"创建时间": "Created at",
	"更新时间": "Updated at",
}

// LookupDictionary returns the built-in translation for a phrase.
func LookupDictionary(p string) (string, bool) {
	tr, ok := dictionary[strings.TrimSpace(p)]
	return tr, ok
}
