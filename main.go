package main

import "rentcar/cmd"

// @title RentCar API
// @version 1.0
// @description 汽车租赁后台 API：车辆、评论、预订、地区与每日收入
// @BasePath /

func main() {
	cmd.Execute()
}
